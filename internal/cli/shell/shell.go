// Package shell runs kanban commands interactively against one open board, so
// drag state and undo history carry over from one command to the next.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// Prompt is printed before every line is read
const Prompt = "kanban> "

// ErrNested is returned when "shell" is run from inside a shell
var ErrNested = errors.New("already inside kanban shell")

type shellKey struct{}

// Cmd returns the shell command. build must return a fresh root command tree
// each time it is called; every line runs against a new tree so flag values
// never leak between lines.
func Cmd(build func() *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively with undo and redo",
		Long: `Start an interactive session on the board. Commands are typed without the
leading "kanban"; quote arguments as in a POSIX shell. Undo, redo and two-step
drag and drop keep their state for the whole session.

Type "exit" or "quit" (or send EOF) to leave.

Example session:
  kanban> task add todo "Write docs"
  kanban> task move "Write docs" --over done
  kanban> undo
  kanban> show
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if ctx.Value(shellKey{}) != nil {
				return ErrNested
			}

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				formatter := cli.NewFormatter(cmd)
				return formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close CLI", "error", err)
				}
			}()

			ctx = context.WithValue(cli.WithCLI(ctx, cliInstance), shellKey{}, true)
			return Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), build)
		},
	}

	return cmd
}

// Run reads commands from in until EOF or "exit". Command failures are
// reported and the session continues.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, build func() *cobra.Command) error {
	scanner := bufio.NewScanner(in)

	for {
		_, _ = fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		words, err := shellwords.Parse(strings.TrimSpace(scanner.Text()))
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "parse error: %v\n", err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "exit", "quit":
			return nil
		}

		if err := execute(ctx, words, out, errOut, build); err != nil && !cli.Reported(err) {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
}

// execute runs one line against a fresh command tree
func execute(ctx context.Context, args []string, out, errOut io.Writer, build func() *cobra.Command) error {
	root := build()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SilenceUsage = true
	root.SilenceErrors = true

	slog.Debug("shell command", "args", args)
	return root.ExecuteContext(ctx)
}
