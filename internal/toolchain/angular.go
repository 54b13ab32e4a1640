package toolchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngtw-dev/ngtw/internal/project"
)

// ErrMissingTool is matched by every MissingToolError.
var ErrMissingTool = errors.New("required tool is not installed")

// MissingToolError reports a required tool that is absent or broken.
type MissingToolError struct {
	Tool string // display name, e.g. "Angular CLI"
	Hint string // install command
	Err  error
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s is not installed.\nPlease install it with: %s", e.Tool, e.Hint)
}

func (e *MissingToolError) Unwrap() error { return e.Err }

// Is reports ErrMissingTool as a match.
func (e *MissingToolError) Is(target error) bool { return target == ErrMissingTool }

// Default tool settings.
const (
	DefaultAngularBin  = "ng"
	DefaultNpmBin      = "npm"
	DefaultBuildScript = "build"
)

// DefaultPackages are installed into every generated project.
var DefaultPackages = []string{"tailwindcss", "@tailwindcss/postcss", "postcss"}

// Angular drives the Angular CLI and npm for one scaffold run.
type Angular struct {
	Runner      Runner
	AngularBin  string
	NpmBin      string
	Packages    []string
	BuildScript string
}

// NewAngular returns an Angular toolchain with default binaries and packages.
func NewAngular(r Runner) *Angular {
	return &Angular{
		Runner:      r,
		AngularBin:  DefaultAngularBin,
		NpmBin:      DefaultNpmBin,
		Packages:    append([]string(nil), DefaultPackages...),
		BuildScript: DefaultBuildScript,
	}
}

// Probe runs `ng version` with output discarded. Any failure means the
// Angular CLI is unusable and is reported as a *MissingToolError.
func (a *Angular) Probe(ctx context.Context) error {
	err := a.Runner.Run(ctx, Command{Name: a.AngularBin, Args: []string{"version"}, Quiet: true})
	if err != nil {
		return &MissingToolError{
			Tool: "Angular CLI",
			Hint: "npm install -g @angular/cli",
			Err:  err,
		}
	}
	return nil
}

// Generate runs `ng new` inside workDir and returns the handle to the new
// project root. Git initialization is skipped and all other defaults accepted.
func (a *Angular) Generate(ctx context.Context, workDir string, params project.Parameters) (*project.Project, error) {
	cmd := Command{
		Name: a.AngularBin,
		Args: []string{"new", params.Name(), "--style", params.Style().String(), "--skip-git", "--defaults"},
		Dir:  workDir,
	}
	if err := a.Runner.Run(ctx, cmd); err != nil {
		return nil, err
	}
	return project.At(workDir, params), nil
}

// Install adds the Tailwind packages to the project, bypassing peer conflicts.
func (a *Angular) Install(ctx context.Context, p *project.Project) error {
	args := append([]string{"install"}, a.Packages...)
	args = append(args, "--force")
	return a.Runner.Run(ctx, Command{Name: a.NpmBin, Args: args, Dir: p.Root})
}

// Build runs the project's own build script.
func (a *Angular) Build(ctx context.Context, p *project.Project) error {
	return a.Runner.Run(ctx, Command{Name: a.NpmBin, Args: []string{"run", a.BuildScript}, Dir: p.Root})
}
