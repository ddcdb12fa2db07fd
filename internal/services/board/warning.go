package board

import "fmt"

// Warning reports a failure the board recovered from: a snapshot that could not
// be loaded, or a change that could not be saved. The in-memory board stays
// authoritative and the command that triggered it still succeeded.
type Warning struct {
	Op  string // Command during which the failure happened, e.g. "load", "add_task"
	Err error
}

// Error implements the error interface so warnings can be logged and wrapped
func (w Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Op, w.Err)
}

// Unwrap returns the underlying failure
func (w Warning) Unwrap() error {
	return w.Err
}

// WarningHandler receives warnings as they happen
type WarningHandler func(Warning)
