package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores values in a Redis instance with no expiry.
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend connects to the Redis server at url (redis://host:port/db).
func NewRedisBackend(ctx context.Context, url string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisBackend{rdb: rdb}, nil
}

// Get implements Backend.
func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := b.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Put implements Backend.
func (b *RedisBackend) Put(ctx context.Context, key string, value []byte) error {
	return b.rdb.Set(ctx, key, value, 0).Err()
}

// Close implements Backend.
func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}
