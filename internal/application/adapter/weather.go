// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"encoding/json"
	"time"
)

// WeatherProvider fetches forecast payloads from the upstream provider.
// Payloads are opaque to the application: the upstream contract is owned by
// the provider and passed through to clients unmodified.
type WeatherProvider interface {
	// GetForecast fetches the weather forecast for the given coordinates.
	GetForecast(ctx context.Context, latitude, longitude float64) (json.RawMessage, error)

	// GetMarine fetches the marine/tide forecast for the given coordinates.
	GetMarine(ctx context.Context, latitude, longitude float64) (json.RawMessage, error)
}

// WeatherCache caches upstream forecast payloads.
type WeatherCache interface {
	// Get returns the cached payload for key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set stores the payload under key with the given TTL.
	Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error
}
