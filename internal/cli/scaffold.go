package cli

import (
	"fmt"
	"os"

	"github.com/ngtw-dev/ngtw/internal/pipeline"
	"github.com/ngtw-dev/ngtw/internal/prompt"
	"github.com/ngtw-dev/ngtw/internal/scaffold"
	"github.com/ngtw-dev/ngtw/internal/toolchain"
	"github.com/spf13/cobra"
)

func runScaffold(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	runner := &toolchain.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	}
	angular := toolchain.NewAngular(runner)
	angular.AngularBin = settings.Angular.Bin
	angular.NpmBin = settings.Npm.Bin
	angular.Packages = settings.Tailwind.Packages
	angular.BuildScript = settings.Build.Script

	ctrl := &pipeline.Controller{
		Toolchain: angular,
		Collector: prompt.New(cmd.InOrStdin(), out),
		Mutator:   &scaffold.Mutator{Installer: angular, Out: out},
		WorkDir:   workDir,
		Out:       out,
	}
	_, err = ctrl.Run(cmd.Context())
	return err
}
