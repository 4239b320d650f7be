// AngelaMos | 2026
// redis.go

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisGateway keeps the durable record under one fixed key, the closest
// server-side analog of the browser-local key-value store this design
// comes from.
type RedisGateway struct {
	client *redis.Client
	key    string
}

func NewRedisGateway(client *redis.Client, key string) *RedisGateway {
	return &RedisGateway{client: client, key: key}
}

func (g *RedisGateway) Load(ctx context.Context) ([]byte, error) {
	data, err := g.client.Get(ctx, g.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("get record key: %w", err)
	}
	return data, nil
}

func (g *RedisGateway) Save(ctx context.Context, data []byte) error {
	if err := g.client.Set(ctx, g.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set record key: %w", err)
	}
	return nil
}

func (g *RedisGateway) Ping(ctx context.Context) error {
	if err := g.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
