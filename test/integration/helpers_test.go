//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ngtw-dev/ngtw/internal/pipeline"
	"github.com/ngtw-dev/ngtw/internal/prompt"
	"github.com/ngtw-dev/ngtw/internal/scaffold"
	"github.com/ngtw-dev/ngtw/internal/toolchain"
)

const fakeNg = `#!/bin/sh
echo "ng $*" >> "$NGTW_FAKE_LOG"
case "$1" in
version)
  echo "Angular CLI: 20.1.0"
  ;;
new)
  mkdir -p "$2/src"
  printf '/* You can add global styles to this file */\n' > "$2/src/styles.$4"
  printf '{"name":"%s"}\n' "$2" > "$2/package.json"
  ;;
*)
  exit 1
  ;;
esac
`

const fakeNpm = `#!/bin/sh
echo "npm $* (in $(basename "$PWD"))" >> "$NGTW_FAKE_LOG"
if [ "$1" = "run" ]; then
  exit "${NGTW_FAKE_BUILD_EXIT:-0}"
fi
`

// testEnv is an isolated working directory with fake ng and npm on PATH.
type testEnv struct {
	WorkDir string
	BinDir  string
	LogFile string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain scripts need a POSIX shell")
	}

	env := &testEnv{
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	writeExecutable(t, filepath.Join(env.BinDir, "ng"), fakeNg)
	writeExecutable(t, filepath.Join(env.BinDir, "npm"), fakeNpm)

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("NGTW_FAKE_LOG", env.LogFile)
	t.Setenv("HOME", t.TempDir())
	return env
}

// removeTool deletes a fake binary so the probe or a later stage fails to
// locate it.
func (e *testEnv) removeTool(t *testing.T, name string) {
	t.Helper()
	if err := os.Remove(filepath.Join(e.BinDir, name)); err != nil {
		t.Fatalf("removing %s: %v", name, err)
	}
	t.Setenv("PATH", e.BinDir)
}

// calls returns the commands the fake tools recorded, one per line.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// runScaffold wires the production components the way the root command does
// and feeds input to the prompts.
func runScaffold(t *testing.T, env *testEnv, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	runner := &toolchain.ExecRunner{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}
	angular := toolchain.NewAngular(runner)
	ctrl := &pipeline.Controller{
		Toolchain: angular,
		Collector: prompt.New(strings.NewReader(input), &out),
		Mutator:   &scaffold.Mutator{Installer: angular, Out: &out},
		WorkDir:   env.WorkDir,
		Out:       &out,
	}
	_, err := ctrl.Run(t.Context())
	return out.String(), err
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}
