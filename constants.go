package furyci

const (
	// ExtraPipFlagsEnv names the variable whose contents are appended to the
	// pip install command.
	ExtraPipFlagsEnv = "EXTRA_PIP_FLAGS"

	// LogLevelEnv selects the scribe log level of the binary.
	LogLevelEnv = "FURY_CI_LOG_LEVEL"

	Pip    = "pip"
	Pytest = "pytest"

	// TestTarget is the directory pytest collects from.
	TestTarget = "fury"
)
