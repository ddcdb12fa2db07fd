package cli

import (
	"errors"

	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// ErrNoDrag is returned by a drop when no drag was started
var ErrNoDrag = errors.New("no drag in progress")

// ErrTaskNotFound is returned when a task named on the command line is not on the board
var ErrTaskNotFound = errors.New("task not found")

// classify maps a command error to an error code, an exit code and an
// optional suggestion
func classify(err error) (string, int, string) {
	switch {
	case errors.Is(err, boardservice.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound, "run 'kanban show' to list column IDs"
	case errors.Is(err, ErrTaskNotFound):
		return "TASK_NOT_FOUND", ExitNotFound, "run 'kanban show' to list tasks"
	case errors.Is(err, boardservice.ErrTitleTooLong):
		return "VALIDATION_ERROR", ExitValidation, "use a shorter title"
	case errors.Is(err, boardservice.ErrTaskTooLong):
		return "VALIDATION_ERROR", ExitValidation, "use a shorter task"
	case errors.Is(err, boardservice.ErrEmptyTitle),
		errors.Is(err, boardservice.ErrEmptyTask):
		return "VALIDATION_ERROR", ExitValidation, ""
	case errors.Is(err, boardservice.ErrDuplicateTask),
		errors.Is(err, boardservice.ErrDuplicateColumn):
		return "DUPLICATE", ExitValidation, ""
	case errors.Is(err, boardservice.ErrDragInProgress):
		return "DRAG_IN_PROGRESS", ExitUsage, "finish it with 'kanban task drop'"
	case errors.Is(err, ErrNoDrag):
		return "NO_DRAG", ExitUsage, "start one with 'kanban task drag <task>'"
	default:
		return "ERROR", ExitError, ""
	}
}

// Fail reports err through the formatter and returns it wrapped with the
// matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := classify(err)
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &CommandError{Code: exit, Err: err}
}

// FailWith reports err under an explicit code
func (f *OutputFormatter) FailWith(code string, exit int, err error) error {
	_ = f.Error(code, err.Error())
	return &CommandError{Code: exit, Err: err}
}
