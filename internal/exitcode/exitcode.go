// Package exitcode defines the process exit codes of the todo CLI.
package exitcode

const (
	// Success covers completed commands, reported no-ops, help and the bare invocation.
	Success = 0

	// Failure indicates a store error: index out of bounds, nothing to delete, or file I/O.
	Failure = 1

	// Usage indicates bad arguments: missing or extra args, an unparseable index, unknown commands or flags.
	Usage = 2
)
