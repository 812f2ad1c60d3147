// Package adapters implements external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fishmate/backend/internal/application/adapter"
)

// redisWeatherCache implements adapter.WeatherCache on top of Redis.
type redisWeatherCache struct {
	client *redis.Client
}

// NewRedisWeatherCache creates a new Redis-backed weather cache.
func NewRedisWeatherCache(client *redis.Client) adapter.WeatherCache {
	return &redisWeatherCache{
		client: client,
	}
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
func (c *redisWeatherCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Set stores the payload under key with the given TTL.
func (c *redisWeatherCache) Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	return c.client.Set(ctx, key, []byte(payload), ttl).Err()
}
