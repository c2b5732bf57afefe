package furyci

import (
	"fmt"
	"os"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface Executable --output fakes/executable.go

// Executable defines the interface for invoking an executable.
type Executable interface {
	Execute(pexec.Execution) error
}

// PipInstallProcess implements the InstallProcess interface.
type PipInstallProcess struct {
	executable Executable
	logger     scribe.Emitter
}

// NewPipInstallProcess creates an instance of the PipInstallProcess given an Executable.
func NewPipInstallProcess(executable Executable, logger scribe.Emitter) PipInstallProcess {
	return PipInstallProcess{
		executable: executable,
		logger:     logger,
	}
}

// Args returns the pip arguments for an editable user install of the
// current directory, followed by any flags from EXTRA_PIP_FLAGS.
func (p PipInstallProcess) Args() []string {
	args := []string{"install", "--user", "-e", "."}

	return append(args, strings.Fields(os.Getenv(ExtraPipFlagsEnv))...)
}

// Execute installs the project in workingDir in editable mode.
func (p PipInstallProcess) Execute(workingDir string) error {
	args := p.Args()

	p.logger.Subprocess("Running '%s %s'", Pip, strings.Join(args, " "))

	err := p.executable.Execute(pexec.Execution{
		Args:   args,
		Env:    os.Environ(),
		Dir:    workingDir,
		Stdout: p.logger.ActionWriter,
		Stderr: p.logger.ActionWriter,
	})
	if err != nil {
		return fmt.Errorf("pip install failed:\nerror: %w", err)
	}

	return nil
}
