package models

import "errors"

// Board invariant violations
var (
	// ErrDuplicateColumnID indicates two columns share an ID
	ErrDuplicateColumnID = errors.New("duplicate column id")

	// ErrDuplicateTask indicates a task appears more than once on the board
	ErrDuplicateTask = errors.New("duplicate task")

	// ErrEmptyColumnID indicates a column without an ID
	ErrEmptyColumnID = errors.New("column id cannot be empty")
)
