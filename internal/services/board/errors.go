package board

import "errors"

// Board command errors. A command that returns one of these left the board untouched.
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("column title cannot be empty")
	ErrTitleTooLong = errors.New("column title cannot exceed 50 characters")
	ErrEmptyTask    = errors.New("task cannot be empty")
	ErrTaskTooLong  = errors.New("task cannot exceed 255 characters")

	// Business logic errors
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("a column with this id already exists")
	ErrDuplicateTask   = errors.New("task already exists on the board")
	ErrDragInProgress  = errors.New("a drag is already in progress")
)

const (
	maxTitleLength = 50
	maxTaskLength  = 255
)
