package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/tui"
)

// TUICmd returns the tui command
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Open the board in full-screen mode. Move with h/j/k/l or the arrow keys,
press space to grab a task and space again to drop it. Undo with u, redo with
ctrl+r. Press ? for every binding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			tui.InitStyles(cliInstance.Config.ColorScheme)
			err = launcher.Launch(ctx, cliInstance.App, launcher.Options{
				Input:    cmd.InOrStdin(),
				Output:   cmd.OutOrStdout(),
				Warnings: cliInstance.Warnings,
			})
			if err != nil {
				return formatter.Fail(err)
			}
			return nil
		},
	}
}
