package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// SetupCLITest opens a CLI over an in-memory store seeded with the starter
// board. The CLI is closed when the test ends.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles.
func SetupCLITest(t *testing.T) (*cli.CLI, *storage.MemoryStore) {
	t.Helper()
	return SetupCLITestWithStore(t, storage.NewMemoryStore())
}

// SetupCLITestWithStore opens a CLI over store
func SetupCLITestWithStore(t *testing.T, store *storage.MemoryStore) (*cli.CLI, *storage.MemoryStore) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory

	cliInstance, err := cli.Open(context.Background(), cfg,
		app.WithStore(store),
		app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Failed to open CLI: %v", err)
	}
	t.Cleanup(func() {
		if err := cliInstance.Close(); err != nil {
			t.Logf("Failed to close CLI: %v", err)
		}
	})

	return cliInstance, store
}
