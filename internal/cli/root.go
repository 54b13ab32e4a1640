package cli

import (
	"context"
	"os"

	"github.com/ngtw-dev/ngtw/internal/branding"
	"github.com/ngtw-dev/ngtw/internal/config"
	"github.com/ngtw-dev/ngtw/internal/logging"
	"github.com/ngtw-dev/ngtw/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv(branding.EnvVar("config")),
		"Config file (default $"+branding.EnvVar("config")+" or ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new Angular workspace in the current directory,
installs Tailwind CSS with its PostCSS plugin, wires the Tailwind import into the
global stylesheet and verifies the result with an initial build.

Run it without arguments and answer the two prompts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

// loadSettings reads the config file and installs the logger for commands
// that need both.
func loadSettings() (*config.Settings, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := s.Log.Level
	if verbose {
		level = "debug"
	}
	logging.Setup(logging.Options{Level: level, Format: s.Log.Format})
	return s, nil
}

// Execute runs the root command with build info injected via ldflags. Any
// error is printed once on stderr.
//
// SIGINT and SIGTERM keep Go's default disposition: the process dies where it
// is, including while blocked on a prompt, and children in the foreground
// process group receive the terminal's SIGINT themselves.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	defer logging.Stop()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.Error(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}
