package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/ngtw-dev/ngtw/internal/branding"
	"github.com/ngtw-dev/ngtw/internal/logging"
	"github.com/ngtw-dev/ngtw/internal/project"
	"github.com/ngtw-dev/ngtw/internal/scaffold"
	"github.com/ngtw-dev/ngtw/internal/ui"
)

// Toolchain is the external generator and build tool.
type Toolchain interface {
	Probe(ctx context.Context) error
	Generate(ctx context.Context, workDir string, params project.Parameters) (*project.Project, error)
	Build(ctx context.Context, p *project.Project) error
}

// Collector gathers the project parameters from the operator. Close is called
// as soon as collection finishes, whatever its outcome.
type Collector interface {
	Collect() (project.Parameters, error)
	Close() error
}

// Mutator applies the Tailwind changes to a generated project.
type Mutator interface {
	Apply(ctx context.Context, p *project.Project) (*scaffold.Result, error)
}

// Controller runs the stages in order.
type Controller struct {
	Toolchain Toolchain
	Collector Collector
	Mutator   Mutator
	// WorkDir is the directory the project is generated in.
	WorkDir string
	// Out receives banners and progress lines; nil discards them.
	Out io.Writer

	state   State
	history []State
	files   []string
}

// State returns the current stage.
func (c *Controller) State() State {
	if c.state == "" {
		return StatePending
	}
	return c.state
}

// History returns every state entered, in order.
func (c *Controller) History() []State {
	return append([]State(nil), c.history...)
}

// Files returns the project-relative paths the mutate stage wrote.
func (c *Controller) Files() []string {
	return append([]string(nil), c.files...)
}

// Run executes the pipeline once and returns the generated project.
func (c *Controller) Run(ctx context.Context) (*project.Project, error) {
	if c.State() != StatePending {
		return nil, fmt.Errorf("pipeline already ran (state %s)", c.State())
	}
	out := c.Out
	if out == nil {
		out = io.Discard
	}

	ui.Banner(out, branding.DisplayName())

	if err := c.enter(StateProbe); err != nil {
		return nil, err
	}
	if err := c.Toolchain.Probe(ctx); err != nil {
		return nil, c.abort(err)
	}

	if err := c.enter(StateCollect); err != nil {
		return nil, err
	}
	params, err := c.collect()
	if err != nil {
		return nil, c.abort(err)
	}

	if err := c.enter(StateGenerate); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "\nCreating Angular project '%s' with %s stylesheets...\n", params.Name(), params.Style())
	p, err := c.Toolchain.Generate(ctx, c.WorkDir, params)
	if err != nil {
		return nil, c.abort(err)
	}

	if err := c.enter(StateMutate); err != nil {
		return p, err
	}
	result, err := c.Mutator.Apply(ctx, p)
	if err != nil {
		return p, c.abort(err)
	}
	if result != nil {
		c.files = result.Files
		logging.Get().Debug().Str("root", result.Root).Strs("files", result.Files).Msg("project mutated")
	}

	if err := c.enter(StateVerify); err != nil {
		return p, err
	}
	fmt.Fprintln(out, "\nRunning initial build to verify setup...")
	if err := c.Toolchain.Build(ctx, p); err != nil {
		return p, c.abort(fmt.Errorf("build verification failed, project left at %s: %w", p.Root, err))
	}

	if err := c.enter(StateDone); err != nil {
		return p, err
	}
	ui.Summary(out, params.Name())
	return p, nil
}

func (c *Controller) collect() (project.Parameters, error) {
	params, err := c.Collector.Collect()
	if cerr := c.Collector.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing prompt: %w", cerr)
	}
	return params, err
}

func (c *Controller) enter(to State) error {
	from := c.State()
	if !isAllowedTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	c.state = to
	c.history = append(c.history, to)
	logging.Get().Debug().Str("from", string(from)).Str("to", string(to)).Msg("pipeline transition")
	return nil
}

// abort moves to the aborted state and wraps err with the stage it came from.
func (c *Controller) abort(err error) error {
	stage := c.State()
	logging.Get().Debug().Err(err).Str("stage", string(stage)).Msg("pipeline aborted")
	if terr := c.enter(StateAborted); terr != nil {
		return terr
	}
	return &StageError{Stage: stage, Err: err}
}
