package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/setup"
	"github.com/thenoetrevino/kanban/internal/cli/shell"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/cli/tutorial"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - a terminal kanban board",
		Long: `Kanban keeps a single board of columns and tasks, saved between runs.

Run "kanban tui" for the interactive board, or "kanban shell" to type
commands with undo and redo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(board.ShowCmd())
	rootCmd.AddCommand(board.ResetCmd())
	rootCmd.AddCommand(board.UndoCmd())
	rootCmd.AddCommand(board.RedoCmd())
	rootCmd.AddCommand(board.TUICmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(shell.Cmd(NewRootCmd))

	return rootCmd
}

// Execute sets up logging and runs the command line. It returns the process
// exit code.
func Execute(ctx context.Context) int {
	if cfg, err := config.Load(); err == nil {
		closer, err := logging.Init(cfg.LogDir(), cfg.Log.Level)
		if err == nil {
			defer func() { _ = closer.Close() }()
		}
	}

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		slog.Error("command failed", "error", err)
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return cli.ExitCodeOf(err)
}
