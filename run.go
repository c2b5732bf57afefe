package furyci

import (
	"time"

	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface InstallProcess --output fakes/install_process.go
//go:generate faux --interface TestProcess --output fakes/test_process.go

// InstallProcess defines the interface for installing the project under test.
type InstallProcess interface {
	Execute(workingDir string) error
}

// TestProcess defines the interface for running the project's test suite.
type TestProcess interface {
	Execute(workingDir string) error
}

// Info identifies the running tool in the log title.
type Info struct {
	Name    string
	Version string
}

// RunContext carries the inputs of a single run.
type RunContext struct {
	Info       Info
	WorkingDir string
}

// RunFunc performs one install-then-test sequence.
type RunFunc func(RunContext) error

// Run will return a RunFunc that installs the project in editable mode and
// then runs its tests. The tests are only run once the install succeeded,
// and the first error is returned as is.
func Run(installProcess InstallProcess, testProcess TestProcess, clock chronos.Clock, logger scribe.Emitter) RunFunc {
	return func(context RunContext) error {
		logger.Title("%s %s", context.Info.Name, context.Info.Version)
		logger.Debug.Subprocess("Working directory: %s", context.WorkingDir)

		logger.Process("Executing install process")
		duration, err := clock.Measure(func() error {
			return installProcess.Execute(context.WorkingDir)
		})
		if err != nil {
			return err
		}

		logger.Action("Completed in %s", duration.Round(time.Millisecond))
		logger.Break()

		logger.Process("Executing test process")
		duration, err = clock.Measure(func() error {
			return testProcess.Execute(context.WorkingDir)
		})
		if err != nil {
			return err
		}

		logger.Action("Completed in %s", duration.Round(time.Millisecond))
		logger.Break()

		return nil
	}
}
