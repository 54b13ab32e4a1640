package scaffold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngtw-dev/ngtw/internal/project"
)

type fakeInstaller struct {
	calls int
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, _ *project.Project) error {
	f.calls++
	return f.err
}

func newProject(t *testing.T, name string, style project.Style) *project.Project {
	t.Helper()
	params, err := project.NewParameters(name, style)
	if err != nil {
		t.Fatalf("NewParameters: %v", err)
	}
	p := project.At(t.TempDir(), params)
	if err := os.MkdirAll(filepath.Join(p.Root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPrependTailwindImport_ExistingContent(t *testing.T) {
	p := newProject(t, "app", project.StyleCSS)
	original := "/* You can add global styles to this file */\nbody { margin: 0; }\n"
	writeFile(t, p.StylesheetPath(), original)

	if err := PrependTailwindImport(p); err != nil {
		t.Fatalf("PrependTailwindImport() error: %v", err)
	}

	got := readGenerated(t, p.StylesheetPath())
	want := "@import \"tailwindcss\";\n" + original
	if got != want {
		t.Errorf("stylesheet = %q, want %q", got, want)
	}
}

func TestPrependTailwindImport_PreservesBytes(t *testing.T) {
	p := newProject(t, "app", project.StyleSCSS)
	// No trailing newline, CRLF and tabs must survive untouched.
	original := "$primary:\t#333;\r\n.a { color: $primary }"
	writeFile(t, p.StylesheetPath(), original)

	if err := PrependTailwindImport(p); err != nil {
		t.Fatalf("PrependTailwindImport() error: %v", err)
	}
	if got := readGenerated(t, p.StylesheetPath()); got != TailwindImport+original {
		t.Errorf("stylesheet = %q", got)
	}
}

func TestPrependTailwindImport_EmptyFile(t *testing.T) {
	p := newProject(t, "app", project.StyleLess)
	writeFile(t, p.StylesheetPath(), "")

	if err := PrependTailwindImport(p); err != nil {
		t.Fatalf("PrependTailwindImport() error: %v", err)
	}
	if got := readGenerated(t, p.StylesheetPath()); got != "@import \"tailwindcss\";\n" {
		t.Errorf("stylesheet = %q", got)
	}
}

func TestPrependTailwindImport_MissingFile(t *testing.T) {
	params, _ := project.NewParameters("Widgets", project.StyleSass)
	p := project.At(t.TempDir(), params)
	// Neither the project root nor src/ exists yet.

	if err := PrependTailwindImport(p); err != nil {
		t.Fatalf("PrependTailwindImport() error: %v", err)
	}

	path := filepath.Join(p.Root, "src", "styles.sass")
	if got := readGenerated(t, path); got != "@import \"tailwindcss\";\n" {
		t.Errorf("stylesheet = %q", got)
	}
}

func TestPrependTailwindImport_NotIdempotentInEffect(t *testing.T) {
	p := newProject(t, "app", project.StyleCSS)
	writeFile(t, p.StylesheetPath(), "body {}\n")

	for i := 0; i < 2; i++ {
		if err := PrependTailwindImport(p); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	want := TailwindImport + TailwindImport + "body {}\n"
	if got := readGenerated(t, p.StylesheetPath()); got != want {
		t.Errorf("stylesheet = %q, want %q", got, want)
	}
}

func TestWritePostCSSConfig(t *testing.T) {
	p := newProject(t, "app", project.StyleCSS)
	writeFile(t, p.PostCSSConfigPath(), `{"plugins": {"autoprefixer": {}}}`)

	if err := WritePostCSSConfig(p); err != nil {
		t.Fatalf("WritePostCSSConfig() error: %v", err)
	}

	content := readGenerated(t, p.PostCSSConfigPath())
	want := "{\n  \"plugins\": {\n    \"@tailwindcss/postcss\": {}\n  }\n}\n"
	if content != want {
		t.Errorf(".postcssrc.json = %q, want %q", content, want)
	}

	var parsed map[string]map[string]any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		t.Fatalf(".postcssrc.json is not valid JSON: %v", err)
	}
	if _, ok := parsed["plugins"]["@tailwindcss/postcss"]; !ok {
		t.Error("plugin @tailwindcss/postcss not enabled")
	}
}

func TestWriteGuidance(t *testing.T) {
	p := newProject(t, "app", project.StyleCSS)
	writeFile(t, p.GuidancePath(), "stale")

	if err := WriteGuidance(p); err != nil {
		t.Fatalf("WriteGuidance() error: %v", err)
	}

	content := readGenerated(t, p.GuidancePath())
	if !bytes.Equal([]byte(content), Guidance()) {
		t.Error("CLAUDE.md differs from the embedded guidance")
	}
	assertContains(t, content, "# Angular + Tailwind CSS Project")
	assertContains(t, content, "**EXCLUSIVELY use Tailwind CSS**")
	assertContains(t, content, "`2xl:` - 2X large screens (1536px+)")
	assertContains(t, content, "dark:bg-gray-800")
	assertContains(t, content, "`.postcssrc.json` - PostCSS configuration for Tailwind")
	assertNotContains(t, content, "stale")
}

func TestApply(t *testing.T) {
	p := newProject(t, "Widgets", project.StyleSass)
	writeFile(t, p.StylesheetPath(), "// sass\n")

	inst := &fakeInstaller{}
	var out bytes.Buffer
	m := &Mutator{Installer: inst, Out: &out}

	result, err := m.Apply(context.Background(), p)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if inst.calls != 1 {
		t.Errorf("installer called %d times, want 1", inst.calls)
	}

	expected := []string{".postcssrc.json", filepath.Join("src", "styles.sass"), "CLAUDE.md"}
	if strings.Join(result.Files, ",") != strings.Join(expected, ",") {
		t.Errorf("Files = %v, want %v", result.Files, expected)
	}

	if got := readGenerated(t, p.StylesheetPath()); got != TailwindImport+"// sass\n" {
		t.Errorf("stylesheet = %q", got)
	}
	assertContains(t, out.String(), "Configuring PostCSS...")
	assertContains(t, out.String(), "Adding Tailwind CSS import to styles.sass...")
	assertContains(t, out.String(), "Creating CLAUDE.md file...")
}

func TestApply_InstallFailureTouchesNothing(t *testing.T) {
	p := newProject(t, "app", project.StyleCSS)
	writeFile(t, p.StylesheetPath(), "body {}\n")

	installErr := errors.New("npm exploded")
	m := &Mutator{Installer: &fakeInstaller{err: installErr}}

	_, err := m.Apply(context.Background(), p)
	if !errors.Is(err, installErr) {
		t.Fatalf("Apply() error = %v, want %v", err, installErr)
	}

	assertFileNotExists(t, p.PostCSSConfigPath())
	assertFileNotExists(t, p.GuidancePath())
	if got := readGenerated(t, p.StylesheetPath()); got != "body {}\n" {
		t.Errorf("stylesheet modified after failed install: %q", got)
	}
}

func TestApply_WriteFailureStops(t *testing.T) {
	params, _ := project.NewParameters("app", project.StyleCSS)
	// The project root is a regular file, so every write fails.
	work := t.TempDir()
	p := project.At(work, params)
	writeFile(t, p.Root, "not a directory")

	m := &Mutator{}
	result, err := m.Apply(context.Background(), p)
	if err == nil {
		t.Fatal("expected write error")
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %v, want none", result.Files)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readGenerated(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}
