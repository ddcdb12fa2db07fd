package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/dnd"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task>",
		Short: "Drag a task and drop it over a column or another task",
		Long: `Move a task the way dragging it on the board would.

Dropping over another task in the same column takes that task's position.
Dropping over a column, or over a task in a different column, appends the task
to the bottom of that column. Without --over the task is dropped outside the
board and nothing changes.

Examples:
  # Reorder within a column
  kanban task move "Task 2" --over "Task 1"

  # Move to another column
  kanban task move "Task 4" --over done

  # JSON output for agents
  kanban task move "Task 4" --over todo --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("over", "", "Column ID or task to drop over")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	task := args[0]
	over, _ := cmd.Flags().GetString("over")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()
	defer cliInstance.ReportWarnings(formatter)

	svc := cliInstance.App.BoardService
	if svc.Board().ColumnOf(task) < 0 {
		return formatter.Fail(fmt.Errorf("%w: %q", cli.ErrTaskNotFound, task))
	}

	if err := svc.StartDrag(dnd.DragStart{ActiveID: task}); err != nil {
		return formatter.Fail(err)
	}
	moved := svc.EndDrag(ctx, dnd.DragEnd{ActiveID: task, OverID: over})

	return reportMove(formatter, task, moved, cliInstance)
}

func reportMove(formatter *cli.OutputFormatter, task string, moved bool, cliInstance *cli.CLI) error {
	board := cliInstance.App.BoardService.Board()

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(moveResult(task, moved, board))
	}

	if !moved {
		formatter.Println(styles.SubtleStyle.Render(fmt.Sprintf("Nothing moved; '%s' stays where it was", task)))
		return nil
	}
	formatter.Println(styles.SuccessStyle.Render(
		fmt.Sprintf("✓ Moved '%s' to %s", task, columnTitle(board, task))))
	return nil
}
