package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the slot under a single redis key.
type RedisSlot struct {
	client redis.UniversalClient
	key    string
}

// NewRedisSlot wraps an existing client.
func NewRedisSlot(client redis.UniversalClient, key string) *RedisSlot {
	if key == "" {
		key = DefaultSlotName
	}
	return &RedisSlot{client: client, key: key}
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, db int, key string) (*RedisSlot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisSlot(client, key), nil
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get history key: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set history key: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
