// Package weather contains the weather/tide proxy use cases.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// ForecastKind selects which upstream product to fetch.
type ForecastKind string

const (
	KindForecast ForecastKind = "forecast"
	KindMarine   ForecastKind = "marine"
)

// SourceCache and SourceUpstream label where a response payload came from.
const (
	SourceCache    = "cache"
	SourceUpstream = "upstream"
)

// GetForecastInput represents the input for a forecast lookup.
type GetForecastInput struct {
	Kind      ForecastKind
	Latitude  float64
	Longitude float64
}

// GetForecastOutput carries the opaque upstream payload and its source.
type GetForecastOutput struct {
	Source  string
	Payload json.RawMessage
}

// GetForecastUseCase proxies forecast lookups through a cache. The upstream
// payload is never inspected or reshaped.
type GetForecastUseCase struct {
	provider adapter.WeatherProvider
	cache    adapter.WeatherCache
	cacheTTL time.Duration
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(provider adapter.WeatherProvider, cache adapter.WeatherCache, cacheTTL time.Duration) *GetForecastUseCase {
	return &GetForecastUseCase{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute returns the forecast payload for the given coordinates, serving
// from cache when possible. Cache failures degrade to an upstream fetch and
// are logged, never surfaced.
func (uc *GetForecastUseCase) Execute(ctx context.Context, input GetForecastInput) (*GetForecastOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	key := cacheKey(input.Kind, input.Latitude, input.Longitude)

	if uc.cache != nil {
		payload, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Weather cache lookup failed, falling back to upstream", "key", key, "error", err)
		} else if payload != nil {
			return &GetForecastOutput{Source: SourceCache, Payload: payload}, nil
		}
	}

	payload, err := uc.fetch(ctx, input)
	if err != nil {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeWeatherUpstream,
			"weather provider request failed",
			err,
		)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			slog.Warn("Weather cache store failed", "key", key, "error", err)
		}
	}

	return &GetForecastOutput{Source: SourceUpstream, Payload: payload}, nil
}

func (uc *GetForecastUseCase) fetch(ctx context.Context, input GetForecastInput) (json.RawMessage, error) {
	if input.Kind == KindMarine {
		return uc.provider.GetMarine(ctx, input.Latitude, input.Longitude)
	}
	return uc.provider.GetForecast(ctx, input.Latitude, input.Longitude)
}

// cacheKey buckets coordinates to two decimal places (~1km) so nearby
// lookups share a cache entry.
func cacheKey(kind ForecastKind, latitude, longitude float64) string {
	return fmt.Sprintf("weather:%s:%.2f:%.2f", kind, latitude, longitude)
}

// validateCoordinates rejects out-of-range coordinates.
func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return domainerror.NewWeatherError(
			domainerror.ErrCodeInvalidCoordinatesQuery,
			"latitude must be within [-90, 90] and longitude within [-180, 180]",
			domainerror.ErrInvalidCoordinatesQuery,
		)
	}
	return nil
}
