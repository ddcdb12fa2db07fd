package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column-id> <title>",
		Short: "Rename a column",
		Long: `Change a column's title. Words after the column ID are joined with spaces.

Examples:
  kanban column rename in-progress Doing
  kanban column rename column-1a2b "Code Review"
  kanban column rename done Shipped --json
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runRename,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	columnID := args[0]
	title := strings.Join(args[1:], " ")

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

	oldTitle := ""
	board := svc.Board()
	if idx := board.ColumnIndex(columnID); idx >= 0 {
		oldTitle = board.Columns[idx].Title
	}

	if err := svc.RenameColumn(ctx, columnID, title); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"column": map[string]interface{}{
				"id":        columnID,
				"title":     title,
				"old_title": oldTitle,
			},
		})
	}

	formatter.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Column %s renamed", columnID)))
	formatter.Println(fmt.Sprintf("  '%s' → '%s'", oldTitle, title))
	return nil
}
