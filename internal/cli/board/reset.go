package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the starter board",
		Long: `Clear the saved board and go back to the starter columns and tasks.
Inside "kanban shell" the reset can be undone.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
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

	cliInstance.App.BoardService.Reset(ctx)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"board": cliInstance.App.BoardService.Board(),
		})
	}
	formatter.Println(styles.SuccessStyle.Render("✓ Board reset"))
	return nil
}
