package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ngtw-dev/ngtw/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyAngularBin       = "angular.bin"
	KeyNpmBin           = "npm.bin"
	KeyTailwindPackages = "tailwind.packages"
	KeyBuildScript      = "build.script"
	KeyNodeConstraint   = "node.constraint"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Keys lists every supported setting in display order.
var Keys = []string{
	KeyAngularBin,
	KeyNpmBin,
	KeyTailwindPackages,
	KeyBuildScript,
	KeyNodeConstraint,
	KeyLogLevel,
	KeyLogFormat,
}

// Settings is the decoded configuration.
type Settings struct {
	Angular  ToolSettings     `mapstructure:"angular"`
	Npm      ToolSettings     `mapstructure:"npm"`
	Tailwind TailwindSettings `mapstructure:"tailwind"`
	Build    BuildSettings    `mapstructure:"build"`
	Node     NodeSettings     `mapstructure:"node"`
	Log      LogSettings      `mapstructure:"log"`
}

type ToolSettings struct {
	Bin string `mapstructure:"bin"`
}

type TailwindSettings struct {
	Packages []string `mapstructure:"packages"`
}

type BuildSettings struct {
	Script string `mapstructure:"script"`
}

type NodeSettings struct {
	Constraint string `mapstructure:"constraint"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InvalidConfigError reports schema violations in a config file.
type InvalidConfigError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config file %s has %d issue(s)", e.Path, len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		if issue.Path != "" {
			b.WriteString(issue.Path + ": ")
		}
		b.WriteString(issue.Message)
	}
	return b.String()
}

// Dir returns the path to the config directory (~/.ngtw/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the default config file path (~/.ngtw/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAngularBin, "ng")
	v.SetDefault(KeyNpmBin, "npm")
	v.SetDefault(KeyTailwindPackages, []string{"tailwindcss", "@tailwindcss/postcss", "postcss"})
	v.SetDefault(KeyBuildScript, "build")
	v.SetDefault(KeyNodeConstraint, "^20.19.0 || ^22.12.0 || >=24.0.0")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
}

// open returns a viper instance with defaults, environment overrides and the
// validated config file at path. An empty path means FilePath(). A missing
// file is not an error.
func open(path string) (*viper.Viper, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidConfigError{Path: path, Issues: result.Issues}
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return v, nil
}

// Load reads settings from the config file at path (FilePath() if empty).
func Load(path string) (*Settings, error) {
	v, err := open(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}

// Get returns the effective value of key as a display string.
func Get(path, key string) (string, error) {
	if !IsKnownKey(key) {
		return "", unknownKeyError(key)
	}
	v, err := open(path)
	if err != nil {
		return "", err
	}
	if key == KeyTailwindPackages {
		return strings.Join(v.GetStringSlice(key), ","), nil
	}
	return v.GetString(key), nil
}

// Set writes key=value to the config file at path (FilePath() if empty),
// creating the file and its directory as needed. List settings take a
// comma-separated value. The resulting file must pass validation.
func Set(path, key, value string) error {
	if !IsKnownKey(key) {
		return unknownKeyError(key)
	}
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetConfigType(fileType)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if key == KeyTailwindPackages {
		v.Set(key, splitList(value))
	} else {
		v.Set(key, value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(path), err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Re-read through validation so a bad value is reported now, not on the
	// next run.
	_, err = open(path)
	return err
}

// IsKnownKey reports whether key is a supported setting.
func IsKnownKey(key string) bool {
	return slices.Contains(Keys, key)
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
