package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column",
		Long: `Delete a column by ID.

Warning: the column's tasks are deleted with it. Inside "kanban shell" the
deletion can be undone.

Examples:
  kanban column delete done
  kanban column delete column-1a2b --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	columnID := args[0]

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

	removed := 0
	board := svc.Board()
	if idx := board.ColumnIndex(columnID); idx >= 0 {
		removed = len(board.Columns[idx].Tasks)
	}

	if err := svc.DeleteColumn(ctx, columnID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"column_id":     columnID,
			"tasks_removed": removed,
		})
	}

	formatter.Println(styles.SuccessStyle.Render(
		fmt.Sprintf("✓ Column %s deleted (%d tasks removed)", columnID, removed)))
	return nil
}
