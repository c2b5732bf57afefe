package furyci

import (
	"errors"
	"os/exec"
)

// ExitCode maps the error returned by a RunFunc to a process exit status.
// A tool's own exit status is passed through unchanged, a tool missing from
// PATH yields 127 and any other failure yields 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the child was terminated by a signal
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}

		return 1
	}

	if errors.Is(err, exec.ErrNotFound) {
		return 127
	}

	return 1
}
