package furyci

import (
	"fmt"
	"os"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

// PytestProcess implements the TestProcess interface.
type PytestProcess struct {
	executable Executable
	logger     scribe.Emitter
}

// NewPytestProcess creates an instance of the PytestProcess given an Executable.
func NewPytestProcess(executable Executable, logger scribe.Emitter) PytestProcess {
	return PytestProcess{
		executable: executable,
		logger:     logger,
	}
}

// Args returns the pytest arguments: very verbose, no output capture.
func (p PytestProcess) Args() []string {
	return []string{"-svv", TestTarget}
}

// Execute runs the test suite from workingDir.
func (p PytestProcess) Execute(workingDir string) error {
	args := p.Args()

	p.logger.Subprocess("Running '%s %s'", Pytest, strings.Join(args, " "))

	err := p.executable.Execute(pexec.Execution{
		Args:   args,
		Env:    os.Environ(),
		Dir:    workingDir,
		Stdout: p.logger.ActionWriter,
		Stderr: p.logger.ActionWriter,
	})
	if err != nil {
		return fmt.Errorf("pytest failed:\nerror: %w", err)
	}

	return nil
}
