package models

import "fmt"

// Board is the ordered collection of columns. Column order is display order.
type Board struct {
	Columns []Column `json:"columns"`
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	columns := make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		columns[i] = c.Clone()
	}
	return Board{Columns: columns}
}

// Equal reports whether both boards hold the same columns, titles and tasks
// in the same order. A nil task list equals an empty one.
func (b Board) Equal(other Board) bool {
	if len(b.Columns) != len(other.Columns) {
		return false
	}
	for i := range b.Columns {
		a, o := b.Columns[i], other.Columns[i]
		if a.ID != o.ID || a.Title != o.Title || len(a.Tasks) != len(o.Tasks) {
			return false
		}
		for j := range a.Tasks {
			if a.Tasks[j] != o.Tasks[j] {
				return false
			}
		}
	}
	return true
}

// ColumnIndex returns the index of the column with the given ID, or -1
func (b Board) ColumnIndex(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// ColumnOf returns the index of the column holding task, or -1
func (b Board) ColumnOf(task string) int {
	for i := range b.Columns {
		if b.Columns[i].Contains(task) {
			return i
		}
	}
	return -1
}

// TaskCount returns the number of tasks across all columns
func (b Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// Validate checks the board invariants: non-empty, pairwise distinct column IDs
// and every task in exactly one place.
func (b Board) Validate() error {
	columns := make(map[string]struct{}, len(b.Columns))
	tasks := make(map[string]string, b.TaskCount())

	for _, c := range b.Columns {
		if c.ID == "" {
			return ErrEmptyColumnID
		}
		if _, dup := columns[c.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnID, c.ID)
		}
		columns[c.ID] = struct{}{}

		for _, t := range c.Tasks {
			if owner, dup := tasks[t]; dup {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateTask, t, owner, c.ID)
			}
			tasks[t] = c.ID
		}
	}
	return nil
}
