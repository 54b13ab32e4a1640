package cli

import (
	"github.com/ngtw-dev/ngtw/internal/doctor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Angular CLI, Node.js and npm are usable",
	Long: `Verify that the configured Angular CLI and npm binaries, node and git are on
PATH, and that the installed Node.js version is supported by the Angular CLI.
Exits non-zero when a required tool is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		d := &doctor.Doctor{
			AngularBin: settings.Angular.Bin,
			NpmBin:     settings.Npm.Bin,
			Constraint: settings.Node.Constraint,
		}
		report := d.Run(cmd.Context())
		report.Write(cmd.OutOrStdout())
		return report.Err()
	},
}
