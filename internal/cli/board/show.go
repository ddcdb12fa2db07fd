package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Long: `Print every column and its tasks.

--filter keeps only tasks containing the term (case-insensitive); columns are
always shown. --search ranks tasks by fuzzy match instead.

Examples:
  kanban show
  kanban show --filter bug
  kanban show --search "rls nts"
  kanban show --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("filter", "", "Only show tasks containing this text")
	cmd.Flags().String("search", "", "Fuzzy-search tasks instead of showing the board")
	cmd.Flags().Int("width", cli.DefaultWidth, "Word-wrap width")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	filter, _ := cmd.Flags().GetString("filter")
	query, _ := cmd.Flags().GetString("search")
	width, _ := cmd.Flags().GetInt("width")

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

	if query != "" {
		matches := svc.Search(query)
		if formatter.Quiet {
			for _, m := range matches {
				formatter.Println(m.Task)
			}
			return nil
		}
		if formatter.JSON {
			results := make([]map[string]interface{}, len(matches))
			for i, m := range matches {
				results[i] = map[string]interface{}{
					"task":   m.Task,
					"column": m.ColumnID,
					"score":  m.Score,
				}
			}
			return formatter.Success(map[string]interface{}{"matches": results})
		}
		formatter.Println(cli.RenderMarkdown(cli.MatchesMarkdown(query, matches, svc.Board()), width))
		return nil
	}

	board := svc.Filter(filter)

	if formatter.Quiet {
		for _, col := range board.Columns {
			for _, task := range col.Tasks {
				formatter.Println(task)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"board":     board,
			"active_id": svc.ActiveID(),
			"can_undo":  svc.CanUndo(),
			"can_redo":  svc.CanRedo(),
		})
	}

	formatter.Println(cli.RenderBoard(board, svc.ActiveID(), width))
	return nil
}
