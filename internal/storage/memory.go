package storage

import (
	"context"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
)

// MemoryStore keeps the encoded board in process memory. Values go through the
// same codec as the durable backends.
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	version int
	present bool
	saveErr error
	saves   int
	clears  int
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the stored value
func (s *MemoryStore) Load(ctx context.Context) (models.Board, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present {
		return models.Board{}, false, nil
	}
	board, err := decodeStored(s.data, s.version)
	if err != nil {
		return models.Board{}, false, err
	}
	return board, true, nil
}

// Save encodes and stores the board, unless FailSaves is set
func (s *MemoryStore) Save(ctx context.Context, board models.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := Encode(board)
	if err != nil {
		return err
	}
	s.data, s.version, s.present = data, SchemaVersion, true
	s.saves++
	return nil
}

// Clear empties the slot
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data, s.version, s.present = nil, 0, false
	s.clears++
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

// SetRaw places an arbitrary value in the slot, bypassing the encoder
func (s *MemoryStore) SetRaw(data []byte, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data, s.version, s.present = append([]byte(nil), data...), version, true
}

// Raw returns the stored bytes and whether the slot is occupied
func (s *MemoryStore) Raw() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]byte(nil), s.data...), s.present
}

// FailSaves makes every following Save return err. A nil err restores saving.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = err
}

// Saves returns the number of successful saves
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saves
}

// Clears returns the number of clears
func (s *MemoryStore) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clears
}
