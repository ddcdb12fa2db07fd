package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <column-id> <task>",
		Short: "Add a task to the bottom of a column",
		Long: `Add a task to the bottom of a column. Words after the column ID are joined
with spaces. A task's text is its identity, so it must be unique on the board.

Examples:
  kanban task add todo "Write release notes"
  kanban task add in-progress Fix login bug
  kanban task add done "Ship v1" --json
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	columnID := args[0]
	text := strings.Join(args[1:], " ")

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
	if err := svc.AddTask(ctx, columnID, text); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"task":   text,
			"column": columnID,
		})
	}

	formatter.Println(styles.SuccessStyle.Render(
		fmt.Sprintf("✓ Task '%s' added to %s", text, columnTitle(svc.Board(), text))))
	return nil
}
