// Package history keeps undo and redo stacks of full board snapshots.
package history

import "github.com/thenoetrevino/kanban/internal/models"

// History owns the current board and the snapshots around it.
// Snapshots are copied on the way in and on the way out, so callers never
// share memory with the stacks.
type History struct {
	current models.Board
	undo    []models.Board // oldest first
	redo    []models.Board // next redo first
	limit   int
}

// Option configures a History
type Option func(*History)

// WithLimit caps the undo stack at n entries, dropping the oldest first.
// Zero or less means unbounded.
func WithLimit(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.limit = n
		}
	}
}

// New creates a History positioned at initial with empty stacks
func New(initial models.Board, opts ...Option) *History {
	h := &History{current: initial.Clone()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Current returns a copy of the current board
func (h *History) Current() models.Board {
	return h.current.Clone()
}

// Commit records the current board on the undo stack, drops all redo entries
// and makes next current.
func (h *History) Commit(next models.Board) {
	h.pushUndo(h.current)
	h.redo = nil
	h.current = next.Clone()
}

// Undo steps back one snapshot. It reports false when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}

	last := len(h.undo) - 1
	prev := h.undo[last]
	h.undo[last] = models.Board{}
	h.undo = h.undo[:last]

	h.redo = append([]models.Board{h.current}, h.redo...)
	h.current = prev
	return true
}

// Redo re-applies the most recently undone snapshot. Only that entry leaves the
// redo stack; further redo steps stay available. It reports false when there is
// nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}

	next := h.redo[0]
	h.redo[0] = models.Board{}
	h.redo = h.redo[1:]

	h.pushUndo(h.current)
	h.current = next
	return true
}

// CanUndo reports whether Undo would change the board
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would change the board
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undo entries
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redo entries
func (h *History) RedoDepth() int { return len(h.redo) }

func (h *History) pushUndo(b models.Board) {
	h.undo = append(h.undo, b)
	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		h.undo = append(h.undo[:0:0], h.undo[drop:]...)
	}
}
