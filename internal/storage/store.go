// Package storage persists board snapshots in a single named key-value slot.
package storage

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

const (
	// DefaultKey is the slot name boards are saved under
	DefaultKey = "kanbanColumns"

	// SchemaVersion is the snapshot version written by this build.
	// Snapshots saved without a version are treated as version 0.
	SchemaVersion = 1
)

// Store loads, saves and clears the persisted board.
type Store interface {
	// Load returns the saved board. The bool is false when nothing is saved.
	Load(ctx context.Context) (models.Board, bool, error)

	// Save replaces the saved board
	Save(ctx context.Context, board models.Board) error

	// Clear removes the saved board. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}

// Compile-time verification that every backend implements Store
var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// checkVersion rejects snapshots written by a newer schema
func checkVersion(version int) error {
	if version > SchemaVersion {
		return fmt.Errorf("%w: %d (supported up to %d)", ErrUnsupportedVersion, version, SchemaVersion)
	}
	return nil
}

// decodeStored validates the stored version and decodes the value
func decodeStored(data []byte, version int) (models.Board, error) {
	if err := checkVersion(version); err != nil {
		return models.Board{}, err
	}
	return Decode(data)
}
