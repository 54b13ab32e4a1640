package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ngtw-dev/ngtw/internal/logging"
)

// Command describes one subprocess invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current one
	// Quiet discards output and skips the echo line.
	Quiet bool
}

// String renders the command line, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'") {
		return strconv.Quote(s)
	}
	return s
}

// Runner executes a command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// CommandError reports a subprocess that ran but exited non-zero. The
// subprocess's own output has already been streamed to the user.
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s (exit status %d)", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec, inheriting the terminal.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run echoes the command line, runs it to completion, and returns a
// *CommandError on non-zero exit.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("locating %s: %w", c.Name, err)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	stdin := r.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	if !c.Quiet {
		fmt.Fprintf(stdout, "\n> %s\n\n", c)
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}

	logging.Get().Debug().Str("command", c.String()).Str("dir", c.Dir).Msg("running command")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CommandError{Command: c.String(), ExitCode: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("running %s: %w", c, err)
	}
	return nil
}
