package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an empty column",
		Long: `Append an empty column titled "New Column" to the right of the board.

Examples:
  # Add a column (human-readable output)
  kanban column add

  # JSON output for agents
  kanban column add --json

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column add --quiet)
  kanban column rename "$COLUMN_ID" "Review"
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	column, err := cliInstance.App.BoardService.AddColumn(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode
	if formatter.Quiet {
		formatter.Println(column.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"column": column,
		})
	}

	formatter.Println(styles.SuccessStyle.Render(
		fmt.Sprintf("✓ Column '%s' added (ID: %s)", column.Title, column.ID)))
	return nil
}
