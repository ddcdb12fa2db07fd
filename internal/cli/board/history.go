package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// UndoCmd returns the undo command
func UndoCmd() *cobra.Command {
	return historyCmd("undo", "Undo the last change (shell only)",
		"Nothing to undo", "✓ Undone",
		func(cmd *cobra.Command, svc boardservice.Service) bool { return svc.Undo(cmd.Context()) })
}

// RedoCmd returns the redo command
func RedoCmd() *cobra.Command {
	return historyCmd("redo", "Redo the last undone change (shell only)",
		"Nothing to redo", "✓ Redone",
		func(cmd *cobra.Command, svc boardservice.Service) bool { return svc.Redo(cmd.Context()) })
}

// historyCmd builds undo and redo. History lives in memory, so outside
// "kanban shell" there is never anything to step through.
func historyCmd(use, short, emptyMsg, doneMsg string, step func(*cobra.Command, boardservice.Service) bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
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
			changed := step(cmd, svc)

			if formatter.Quiet {
				return nil
			}
			if formatter.JSON {
				return formatter.Success(map[string]interface{}{
					"changed":  changed,
					"can_undo": svc.CanUndo(),
					"can_redo": svc.CanRedo(),
				})
			}
			if !changed {
				formatter.Println(styles.SubtleStyle.Render(emptyMsg))
				return nil
			}
			formatter.Println(styles.SuccessStyle.Render(doneMsg))
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
