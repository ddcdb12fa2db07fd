package dnd

import "github.com/thenoetrevino/kanban/internal/models"

// Resolve maps a drop onto a new board. The second result is false when the drop
// does not change anything: released outside a target, the dragged task or the
// target is no longer on the board, or the task was dropped onto its own slot.
//
// Within a column the task takes the position of the task it was dropped on;
// dropping it on its own column moves it to the bottom. Across columns the task
// is always appended to the bottom of the destination.
//
// The input board is never modified. Columns that do not change keep sharing
// their task slices with the input.
func Resolve(board models.Board, ev DragEnd) (models.Board, bool) {
	if !ev.Dropped() {
		return board, false
	}

	from := board.ColumnOf(ev.ActiveID)
	if from < 0 {
		return board, false
	}

	to := board.ColumnIndex(ev.OverID)
	if to < 0 {
		to = board.ColumnOf(ev.OverID)
	}
	if to < 0 {
		return board, false
	}

	columns := make([]models.Column, len(board.Columns))
	copy(columns, board.Columns)

	src := board.Columns[from]
	if from == to {
		oldIndex := src.IndexOf(ev.ActiveID)
		newIndex := src.IndexOf(ev.OverID)
		if newIndex < 0 {
			newIndex = len(src.Tasks) - 1
		}
		if oldIndex == newIndex {
			return board, false
		}
		columns[from] = withTasks(src, ArrayMove(src.Tasks, oldIndex, newIndex))
		return models.Board{Columns: columns}, true
	}

	dst := board.Columns[to]
	columns[from] = withTasks(src, remove(src.Tasks, ev.ActiveID))
	columns[to] = withTasks(dst, appendCopy(dst.Tasks, ev.ActiveID))
	return models.Board{Columns: columns}, true
}

// ArrayMove returns a copy of items with the element at from moved to to.
// Elements between the two positions shift by one. A negative to counts from
// the end. Out of range positions return an unchanged copy.
func ArrayMove(items []string, from, to int) []string {
	out := make([]string, len(items))
	copy(out, items)

	if to < 0 {
		to += len(out)
	}
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

func withTasks(c models.Column, tasks []string) models.Column {
	return models.Column{ID: c.ID, Title: c.Title, Tasks: tasks}
}

func remove(items []string, item string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != item {
			out = append(out, it)
		}
	}
	return out
}

func appendCopy(items []string, item string) []string {
	out := make([]string, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}
