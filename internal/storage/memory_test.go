package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/models"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, models.Seed()))
	assert.Equal(t, 1, store.Saves())

	loaded, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.Equal(models.Seed()))

	require.NoError(t, store.Clear(ctx))
	_, present := store.Raw()
	assert.False(t, present)
	assert.Equal(t, 1, store.Clears())
}

func TestMemoryStore_FailSaves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	boom := errors.New("quota exceeded")

	store.FailSaves(boom)
	assert.ErrorIs(t, store.Save(ctx, models.Seed()), boom)
	assert.Equal(t, 0, store.Saves())

	store.FailSaves(nil)
	assert.NoError(t, store.Save(ctx, models.Seed()))
}

func TestMemoryStore_SetRawMalformed(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.SetRaw([]byte("garbage"), 0)

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestOpen_Backends(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(ctx, Options{Backend: BackendSQLite, SQLitePath: MemoryDSN})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	assert.NoError(t, store.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
