package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend       string
	Key           string
	SQLitePath    string
	RedisAddr     string // host:port or a redis:// URL
	RedisPassword string
	RedisDB       int
}

// Open returns the store named by opts.Backend
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case BackendSQLite, "":
		return OpenSQLite(ctx, opts.SQLitePath, opts.Key)
	case BackendRedis:
		return openRedis(ctx, opts)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func openRedis(ctx context.Context, opts Options) (*RedisStore, error) {
	redisOpts, err := redis.ParseURL(opts.RedisAddr)
	if err != nil {
		redisOpts = &redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		}
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", opts.RedisAddr, err)
	}
	return NewRedisStore(client, opts.Key), nil
}
