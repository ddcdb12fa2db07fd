package cli

import "github.com/thenoetrevino/kanban/internal/models"

// ColumnIDOf returns the ID of the column holding task, or "" if the task is
// not on the board
func ColumnIDOf(board models.Board, task string) string {
	if idx := board.ColumnOf(task); idx >= 0 {
		return board.Columns[idx].ID
	}
	return ""
}
