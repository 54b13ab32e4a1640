package project

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyName is returned when the project name is blank after trimming.
var ErrEmptyName = errors.New("Application name cannot be empty.")

// Style is a stylesheet format accepted by `ng new --style`.
type Style string

// Supported stylesheet formats.
const (
	StyleCSS  Style = "css"
	StyleSCSS Style = "scss"
	StyleSass Style = "sass"
	StyleLess Style = "less"
)

// String returns the format as passed on the command line.
func (s Style) String() string { return string(s) }

// ParseStyleChoice maps a stylesheet menu answer to a Style. Only the exact
// answers "2", "3" and "4" select scss, sass and less; everything else,
// including an empty answer, selects css.
func ParseStyleChoice(choice string) Style {
	switch strings.TrimSpace(choice) {
	case "2":
		return StyleSCSS
	case "3":
		return StyleSass
	case "4":
		return StyleLess
	default:
		return StyleCSS
	}
}

// Parameters are the validated answers for a new project.
type Parameters struct {
	name  string
	style Style
}

// NewParameters trims name and returns ErrEmptyName if nothing is left.
func NewParameters(name string, style Style) (Parameters, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Parameters{}, ErrEmptyName
	}
	if style == "" {
		style = StyleCSS
	}
	return Parameters{name: name, style: style}, nil
}

// Name returns the trimmed project name.
func (p Parameters) Name() string { return p.name }

// Style returns the stylesheet format.
func (p Parameters) Style() Style { return p.style }

// File names written into a generated project.
const (
	PostCSSConfigFile = ".postcssrc.json"
	GuidanceFile      = "CLAUDE.md"
	sourceDir         = "src"
)

// Project is the handle to a generated project root.
type Project struct {
	Root   string
	Params Parameters
}

// At returns the handle for a project generated by `ng new` inside workDir.
func At(workDir string, params Parameters) *Project {
	return &Project{
		Root:   filepath.Join(workDir, params.Name()),
		Params: params,
	}
}

// StylesheetName returns the global stylesheet file name, e.g. "styles.scss".
func (p *Project) StylesheetName() string {
	return "styles." + p.Params.Style().String()
}

// StylesheetPath returns the absolute path of src/styles.<style>.
func (p *Project) StylesheetPath() string {
	return filepath.Join(p.Root, sourceDir, p.StylesheetName())
}

// PostCSSConfigPath returns the path of .postcssrc.json.
func (p *Project) PostCSSConfigPath() string {
	return filepath.Join(p.Root, PostCSSConfigFile)
}

// GuidancePath returns the path of CLAUDE.md.
func (p *Project) GuidancePath() string {
	return filepath.Join(p.Root, GuidanceFile)
}
