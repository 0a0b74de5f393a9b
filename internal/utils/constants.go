package utils

const (
	// ApplicationName is the command name used in help and version output.
	ApplicationName = "dirtree"
	// EnvironmentPrefix prefixes every environment variable dirtree reads.
	EnvironmentPrefix = "DIRTREE"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the command.
	ApplicationExecutionFailedMessage = "Error"

	unknownVersion   = "unknown"
	develVersion     = "(devel)"
	gitDirectoryName = ".git"
)
