package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	furyci "github.com/fury-gl/fury-ci"
	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	logger := scribe.NewEmitter(os.Stdout).WithLevel(os.Getenv(furyci.LogLevelEnv))

	run := furyci.Run(
		furyci.NewPipInstallProcess(pexec.NewExecutable(furyci.Pip), logger),
		furyci.NewPytestProcess(pexec.NewExecutable(furyci.Pytest), logger),
		chronos.DefaultClock,
		logger,
	)

	cmd := &cobra.Command{
		Use:           "fury-ci",
		Short:         "Install the project in editable mode and run its test suite",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir, err := os.Getwd()
			if err != nil {
				return err
			}

			return run(furyci.RunContext{
				Info:       furyci.Info{Name: cmd.Name(), Version: version},
				WorkingDir: workingDir,
			})
		},
	}

	err := cmd.Execute()
	if err != nil {
		// the tool has already reported its own failure
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	os.Exit(furyci.ExitCode(err))
}
