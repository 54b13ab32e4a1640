package scaffold

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ngtw-dev/ngtw/internal/project"
)

//go:embed templates/*
var templateFS embed.FS

// TailwindImport is prepended to the project's global stylesheet.
const TailwindImport = "@import \"tailwindcss\";\n"

const (
	postcssTemplate  = "templates/postcssrc.json"
	guidanceTemplate = "templates/CLAUDE.md"
)

// Installer adds the Tailwind packages to a generated project.
type Installer interface {
	Install(ctx context.Context, p *project.Project) error
}

// Result lists the files written, relative to the project root.
type Result struct {
	Root  string
	Files []string
}

// Mutator applies the post-generation changes to a project.
type Mutator struct {
	Installer Installer
	// Out receives progress lines; nil discards them.
	Out io.Writer
}

// Apply installs the Tailwind packages and then writes, in order, the PostCSS
// config, the stylesheet import and the guidance file. A failed install stops
// before any file is touched. A failed write stops immediately and earlier
// writes are left as they are.
func (m *Mutator) Apply(ctx context.Context, p *project.Project) (*Result, error) {
	if m.Installer != nil {
		m.printf("\nInstalling Tailwind CSS and dependencies...\n")
		if err := m.Installer.Install(ctx, p); err != nil {
			return nil, err
		}
	}

	result := &Result{Root: p.Root}

	m.printf("\nConfiguring PostCSS...\n")
	if err := WritePostCSSConfig(p); err != nil {
		return result, err
	}
	result.Files = append(result.Files, project.PostCSSConfigFile)

	m.printf("Adding Tailwind CSS import to %s...\n", p.StylesheetName())
	if err := PrependTailwindImport(p); err != nil {
		return result, err
	}
	result.Files = append(result.Files, filepath.Join("src", p.StylesheetName()))

	m.printf("Creating %s file...\n", project.GuidanceFile)
	if err := WriteGuidance(p); err != nil {
		return result, err
	}
	result.Files = append(result.Files, project.GuidanceFile)

	return result, nil
}

func (m *Mutator) printf(format string, args ...any) {
	if m.Out != nil {
		fmt.Fprintf(m.Out, format, args...)
	}
}

// WritePostCSSConfig overwrites .postcssrc.json with the Tailwind plugin config.
func WritePostCSSConfig(p *project.Project) error {
	return writeTemplate(postcssTemplate, p.PostCSSConfigPath())
}

// WriteGuidance overwrites CLAUDE.md with the Tailwind styling guidance.
func WriteGuidance(p *project.Project) error {
	return writeTemplate(guidanceTemplate, p.GuidancePath())
}

// PrependTailwindImport rewrites src/styles.<style> as the Tailwind import
// followed by the previous content, byte for byte. A missing stylesheet is
// treated as empty.
func PrependTailwindImport(p *project.Project) error {
	path := p.StylesheetPath()

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	content := make([]byte, 0, len(TailwindImport)+len(existing))
	content = append(content, TailwindImport...)
	content = append(content, existing...)

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeTemplate(name, dest string) error {
	data, err := fs.ReadFile(templateFS, name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// PostCSSConfig returns the embedded .postcssrc.json content.
func PostCSSConfig() []byte {
	data, _ := fs.ReadFile(templateFS, postcssTemplate)
	return data
}

// Guidance returns the embedded CLAUDE.md content.
func Guidance() []byte {
	data, _ := fs.ReadFile(templateFS, guidanceTemplate)
	return data
}
