package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DragCmd())
	cmd.AddCommand(DropCmd())

	return cmd
}

// columnTitle returns the title of the column holding task, or "" if the task
// is not on the board
func columnTitle(board models.Board, task string) string {
	if idx := board.ColumnOf(task); idx >= 0 {
		return board.Columns[idx].Title
	}
	return ""
}

// moveResult is the JSON shape shared by move and drop
func moveResult(task string, moved bool, board models.Board) map[string]interface{} {
	return map[string]interface{}{
		"task":   task,
		"moved":  moved,
		"column": cli.ColumnIDOf(board, task),
	}
}
