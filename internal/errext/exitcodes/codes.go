// Package exitcodes contains the process exit codes used by the mix command.
package exitcodes

// ExitCode is a process exit code.
type ExitCode uint8

const (
	// DiagnosticsReported means the sources were read but contain errors.
	DiagnosticsReported ExitCode = 1
	// FatalSyntaxError means a parse had to stop early.
	FatalSyntaxError ExitCode = 2
	// InvalidProject covers missing or malformed mix.conf files and bad flags.
	InvalidProject ExitCode = 3
	// NotImplemented is returned by commands that are still under development.
	NotImplemented ExitCode = 4
)
