package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// ExecuteCLICommand executes a CLI command against a test CLI instance.
// The instance is injected through the context so commands see the test store.
func ExecuteCLICommand(t *testing.T, cliInstance *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), cliInstance, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, cliInstance *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if cliInstance == nil {
		t.Fatal("cliInstance cannot be nil - SetupCLITest must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(cli.WithCLI(ctx, cliInstance))

	return testutil.ExecuteCommand(t, cmd)
}

// ParseJSON parses the JSON a command printed with --json
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}
