// Package doctor reports whether the tools the scaffolder shells out to are
// available and whether the installed Node.js satisfies the Angular CLI's
// supported range.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ngtw-dev/ngtw/internal/ui"
)

// DefaultNodeConstraint is the Node.js range supported by current Angular
// releases.
const DefaultNodeConstraint = "^20.19.0 || ^22.12.0 || >=24.0.0"

// ErrMissingTools is returned by Report.Err when a required tool is absent.
var ErrMissingTools = errors.New("required tools are missing")

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusMiss
)

// Tag returns the fixed-width marker printed before a check line.
func (s Status) Tag() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusWarn:
		return "[WARN]"
	default:
		return "[MISS]"
	}
}

// Check is one line of the report.
type Check struct {
	Name     string
	Status   Status
	Detail   string
	Required bool
}

// Report collects the results of a doctor run.
type Report struct {
	Checks []Check
}

// Err returns ErrMissingTools naming every required tool that was not found.
func (r Report) Err() error {
	var missing []string
	for _, c := range r.Checks {
		if c.Required && c.Status == StatusMiss {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingTools, strings.Join(missing, ", "))
}

// Render returns the tag colored for its status.
func (s Status) Render() string {
	switch s {
	case StatusOK:
		return ui.RenderPass(s.Tag())
	case StatusWarn:
		return ui.RenderWarn(s.Tag())
	default:
		return ui.RenderFail(s.Tag())
	}
}

// Write prints the report grouped under a heading.
func (r Report) Write(w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  %s %s\n", c.Status.Render(), c.Detail)
	}
}

// Doctor runs the environment checks. Zero-value fields fall back to the
// process environment.
type Doctor struct {
	AngularBin string
	NpmBin     string
	Constraint string

	// LookPath resolves a binary name; defaults to exec.LookPath.
	LookPath func(name string) (string, error)
	// NodeVersion returns `node --version` output.
	NodeVersion func(ctx context.Context) (string, error)
}

// Run executes every check and returns the report.
func (d *Doctor) Run(ctx context.Context) Report {
	var r Report
	r.Checks = append(r.Checks,
		d.checkBinary(orDefault(d.AngularBin, "ng"), true),
		d.checkBinary("node", true),
		d.checkBinary(orDefault(d.NpmBin, "npm"), true),
		d.checkBinary("git", false),
	)
	if r.Checks[1].Status == StatusOK {
		r.Checks = append(r.Checks, d.checkNodeVersion(ctx))
	}
	return r
}

func (d *Doctor) checkBinary(name string, required bool) Check {
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(name)
	if err != nil {
		status := StatusMiss
		if !required {
			status = StatusWarn
		}
		return Check{Name: name, Status: status, Required: required, Detail: name + " not found"}
	}
	return Check{Name: name, Status: StatusOK, Required: required, Detail: fmt.Sprintf("%s found at %s", name, path)}
}

func (d *Doctor) checkNodeVersion(ctx context.Context) Check {
	nodeVersion := d.NodeVersion
	if nodeVersion == nil {
		nodeVersion = execNodeVersion
	}
	constraint := orDefault(d.Constraint, DefaultNodeConstraint)

	check := Check{Name: "node version", Status: StatusWarn}
	raw, err := nodeVersion(ctx)
	if err != nil {
		check.Detail = fmt.Sprintf("could not read node version: %v", err)
		return check
	}
	version := strings.TrimSpace(raw)
	ok, err := SatisfiesConstraint(version, constraint)
	switch {
	case err != nil:
		check.Detail = err.Error()
	case !ok:
		check.Detail = fmt.Sprintf("node %s does not satisfy %s", version, constraint)
	default:
		check.Status = StatusOK
		check.Detail = fmt.Sprintf("node %s satisfies %s", version, constraint)
	}
	return check
}

// SatisfiesConstraint reports whether version (with or without a leading
// "v") falls within constraint.
func SatisfiesConstraint(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return c.Check(v), nil
}

func execNodeVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
