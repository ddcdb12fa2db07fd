package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/dnd"
)

// DragCmd returns the task drag subcommand. The drag stays in flight until a
// drop, so it is only useful inside "kanban shell".
func DragCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drag <task>",
		Short: "Pick up a task (shell only)",
		Long: `Pick up a task. It is shown as being dragged until "task drop".
Only one task can be dragged at a time.

Examples (inside kanban shell):
  task drag "Task 4"
  show
  task drop done
`,
		Args: cobra.ExactArgs(1),
		RunE: runDrag,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// DropCmd returns the task drop subcommand
func DropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop [column-id|task]",
		Short: "Drop the dragged task (shell only)",
		Long: `Drop the task picked up with "task drag" over a column or another task.
Without an argument the task is dropped outside the board and nothing changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDrop,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDrag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	task := args[0]

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

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"active_id": task})
	}
	formatter.Println(styles.ActiveStyle.Render(fmt.Sprintf("Dragging '%s'", task)))
	return nil
}

func runDrop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	over := ""
	if len(args) == 1 {
		over = args[0]
	}

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
	task := svc.ActiveID()
	if task == "" {
		return formatter.Fail(cli.ErrNoDrag)
	}

	moved := svc.EndDrag(ctx, dnd.DragEnd{ActiveID: task, OverID: over})
	return reportMove(formatter, task, moved, cliInstance)
}
