// Package revalidate signals the external rendering cache that a logical
// view path went stale. The signal is published to a Redis channel the
// rendering layer subscribes to; the cache itself lives elsewhere.
package revalidate

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
)

type Signaler interface {
	Invalidate(ctx context.Context, path string) error
}

type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(address, password string, db int, channel string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	return &Redis{client: client, channel: channel}
}

func (r *Redis) Invalidate(ctx context.Context, path string) error {
	if err := r.client.Publish(r.channel, path).Err(); err != nil {
		return fmt.Errorf("invalidate: error publishing stale path %q: %w", path, err)
	}
	return nil
}

// Noop is used when no rendering cache is wired, and in tests.
type Noop struct{}

func (Noop) Invalidate(context.Context, string) error {
	return nil
}
