package models

// ============================================================================
// SEED BOARD
// ============================================================================

// Canonical column IDs of the seed board
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnDone       = "done"
)

// ============================================================================
// NEW COLUMN DEFAULTS
// ============================================================================

const (
	// NewColumnTitle is the title given to columns created without one
	NewColumnTitle = "New Column"

	// NewColumnIDPrefix prefixes generated column IDs
	NewColumnIDPrefix = "column-"
)

// Seed returns the canonical starting board. Every call returns a fresh copy.
func Seed() Board {
	return Board{Columns: []Column{
		{ID: ColumnTodo, Title: "To Do", Tasks: []string{"Task 1", "Task 2", "Task 3"}},
		{ID: ColumnInProgress, Title: "In Progress", Tasks: []string{"Task 4", "Task 5"}},
		{ID: ColumnDone, Title: "Done", Tasks: []string{"Task 6"}},
	}}
}
