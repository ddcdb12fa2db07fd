package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

func TestGetCLIFromContext_ReturnsInjectedCLI(t *testing.T) {
	ctx := context.Background()
	owner, err := Open(ctx, config.Default(),
		app.WithStore(storage.NewMemoryStore()),
		app.WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = owner.Close() }()

	borrowed, err := GetCLIFromContext(WithCLI(ctx, owner))
	require.NoError(t, err)

	assert.Same(t, owner.App, borrowed.App)
	require.NoError(t, borrowed.Close(), "closing a borrowed CLI is a no-op")

	// the owner's app is still usable
	require.NoError(t, owner.App.BoardService.AddTask(ctx, models.ColumnTodo, "Still open"))
}

func TestGetCLIFromContext_SharesWarnings(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.SetRaw([]byte("nope"), storage.SchemaVersion)

	owner, err := Open(ctx, config.Default(), app.WithStore(store), app.WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = owner.Close() }()

	borrowed, err := GetCLIFromContext(WithCLI(ctx, owner))
	require.NoError(t, err)

	warnings := borrowed.Warnings()
	require.Len(t, warnings, 1)
	assert.Empty(t, owner.Warnings(), "draining through either view empties the queue")
}
