package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, a drop with no drag in progress,
	// or a drag started while another is in flight.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Column not found, task not on the board.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A config file that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or over-long titles and tasks, duplicate tasks.
	ExitValidation = 5
)

// CommandError is returned by a command that already reported its failure. It
// carries the process exit code.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeOf maps an error returned from a command to a process exit code
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// Reported reports whether err has already been printed by a formatter
func Reported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
