package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/kanban/internal/models"
)

// RedisStore keeps the board slot under a Redis key. The schema version lives
// under a sibling key so the value keeps the plain board shape.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps an existing client. The store owns the client from here on.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if client == nil {
		panic("storage.NewRedisStore: client is nil")
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) versionKey() string {
	return s.key + ":version"
}

// Load reads the value and its version in one transaction
func (s *RedisStore) Load(ctx context.Context) (models.Board, bool, error) {
	var valueCmd, versionCmd *redis.StringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		valueCmd = pipe.Get(ctx, s.key)
		versionCmd = pipe.Get(ctx, s.versionKey())
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return models.Board{}, false, fmt.Errorf("failed to read board: %w", err)
	}

	data, err := valueCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Board{}, false, nil
	}
	if err != nil {
		return models.Board{}, false, fmt.Errorf("failed to read board: %w", err)
	}

	version, err := versionCmd.Int()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		return models.Board{}, false, fmt.Errorf("failed to read board version: %w", err)
	}

	board, err := decodeStored(data, version)
	if err != nil {
		return models.Board{}, false, err
	}
	return board, true, nil
}

// Save writes the value and its version in one transaction
func (s *RedisStore) Save(ctx context.Context, board models.Board) error {
	data, err := Encode(board)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key, data, 0)
		pipe.Set(ctx, s.versionKey(), SchemaVersion, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// Clear deletes the value and its version
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key, s.versionKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear board: %w", err)
	}
	return nil
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
