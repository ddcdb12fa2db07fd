package tutorial

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a short walkthrough of the board commands",
		Long: `Print a walkthrough of every kanban command. The markdown is rendered for
the terminal unless --raw is given.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := tutorialContent
			if !raw {
				out = cli.RenderMarkdown(tutorialContent, width) + "\n"
			}
			_, _ = cmd.OutOrStdout().Write([]byte(out))
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	cmd.Flags().IntVar(&width, "width", cli.DefaultWidth, "Wrap width for rendered output")

	return cmd
}
