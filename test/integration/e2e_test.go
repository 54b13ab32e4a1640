//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngtw-dev/ngtw/internal/project"
	"github.com/ngtw-dev/ngtw/internal/scaffold"
	"github.com/ngtw-dev/ngtw/internal/toolchain"
)

// TestFullFlowDefaultStyle runs probe -> prompts -> ng new -> npm install ->
// file changes -> npm run build against the fake toolchain.
func TestFullFlowDefaultStyle(t *testing.T) {
	env := setupTestEnv(t)

	out, err := runScaffold(t, env, "my app\n\n")
	if err != nil {
		t.Fatalf("scaffold: %v\n%s", err, out)
	}

	want := []string{
		"ng version",
		"ng new my app --style css --skip-git --defaults",
		"npm install tailwindcss @tailwindcss/postcss postcss --force (in my app)",
		"npm run build (in my app)",
	}
	got := env.calls(t)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("calls =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	root := filepath.Join(env.WorkDir, "my app")
	styles := readFile(t, filepath.Join(root, "src", "styles.css"))
	if styles != scaffold.TailwindImport+"/* You can add global styles to this file */\n" {
		t.Errorf("styles.css = %q", styles)
	}
	if got := readFile(t, filepath.Join(root, project.PostCSSConfigFile)); got != string(scaffold.PostCSSConfig()) {
		t.Errorf(".postcssrc.json = %q", got)
	}
	if got := readFile(t, filepath.Join(root, project.GuidanceFile)); got != string(scaffold.Guidance()) {
		t.Errorf("CLAUDE.md differs from the embedded guidance")
	}

	for _, line := range []string{"\n> ng new \"my app\" --style css --skip-git --defaults\n", "Setup Complete!", "cd my app"} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
	if strings.Contains(out, "\n> ng version") {
		t.Errorf("probe should not be echoed:\n%s", out)
	}
}

func TestFullFlowSass(t *testing.T) {
	env := setupTestEnv(t)

	if out, err := runScaffold(t, env, "Widgets\n3\n"); err != nil {
		t.Fatalf("scaffold: %v\n%s", err, out)
	}

	styles := readFile(t, filepath.Join(env.WorkDir, "Widgets", "src", "styles.sass"))
	if !strings.HasPrefix(styles, scaffold.TailwindImport) {
		t.Errorf("styles.sass does not start with the Tailwind import: %q", styles)
	}
	assertFileNotExists(t, filepath.Join(env.WorkDir, "Widgets", "src", "styles.css"))
}

func TestMissingAngularCLI(t *testing.T) {
	env := setupTestEnv(t)
	env.removeTool(t, "ng")

	_, err := runScaffold(t, env, "my app\n\n")
	if !errors.Is(err, toolchain.ErrMissingTool) {
		t.Fatalf("err = %v, want ErrMissingTool", err)
	}
	entries, _ := os.ReadDir(env.WorkDir)
	if len(entries) != 0 {
		t.Errorf("work dir should be empty, has %d entries", len(entries))
	}
}

func TestEmptyNameRunsNoGenerator(t *testing.T) {
	env := setupTestEnv(t)

	_, err := runScaffold(t, env, "\n")
	if !errors.Is(err, project.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if got := env.calls(t); len(got) != 1 || got[0] != "ng version" {
		t.Errorf("calls = %v, want only the probe", got)
	}
}

func TestBuildFailureKeepsProject(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv("NGTW_FAKE_BUILD_EXIT", "3")

	_, err := runScaffold(t, env, "broken\n2\n")
	var ce *toolchain.CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *CommandError", err)
	}
	if ce.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", ce.ExitCode)
	}
	root := filepath.Join(env.WorkDir, "broken")
	assertFileExists(t, filepath.Join(root, "src", "styles.scss"))
	assertFileExists(t, filepath.Join(root, project.GuidanceFile))
}
