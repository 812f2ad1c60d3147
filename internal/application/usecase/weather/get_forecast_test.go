// Package weather contains the weather/tide proxy use cases.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// fakeWeatherProvider records calls and returns a fixed payload.
type fakeWeatherProvider struct {
	payload  json.RawMessage
	err      error
	forecast int
	marine   int
}

func (f *fakeWeatherProvider) GetForecast(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	f.forecast++
	return f.payload, f.err
}

func (f *fakeWeatherProvider) GetMarine(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	f.marine++
	return f.payload, f.err
}

// fakeWeatherCache is an in-memory WeatherCache.
type fakeWeatherCache struct {
	entries map[string]json.RawMessage
	getErr  error
	setErr  error
}

func newFakeWeatherCache() *fakeWeatherCache {
	return &fakeWeatherCache{entries: make(map[string]json.RawMessage)}
}

func (f *fakeWeatherCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	payload, ok := f.entries[key]
	if !ok {
		return nil, nil
	}
	return payload, nil
}

func (f *fakeWeatherCache) Set(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = payload
	return nil
}

func TestGetForecastUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	payload := json.RawMessage(`{"hourly":{"temperature_2m":[28.1]}}`)

	t.Run("cache miss fetches upstream and stores the payload", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		cache := newFakeWeatherCache()
		uc := NewGetForecastUseCase(provider, cache, 15*time.Minute)

		output, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Source != SourceUpstream {
			t.Errorf("expected source %s, got %s", SourceUpstream, output.Source)
		}
		if provider.forecast != 1 {
			t.Errorf("expected one upstream call, got %d", provider.forecast)
		}
		if len(cache.entries) != 1 {
			t.Errorf("expected payload stored in cache, got %d entries", len(cache.entries))
		}
	})

	t.Run("cache hit never touches upstream", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		cache := newFakeWeatherCache()
		uc := NewGetForecastUseCase(provider, cache, 15*time.Minute)

		input := GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Source != SourceCache {
			t.Errorf("expected source %s, got %s", SourceCache, output.Source)
		}
		if provider.forecast != 1 {
			t.Errorf("expected upstream called once, got %d calls", provider.forecast)
		}
		if string(output.Payload) != string(payload) {
			t.Errorf("expected cached payload returned unchanged")
		}
	})

	t.Run("marine lookups use the marine product and a distinct cache key", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		cache := newFakeWeatherCache()
		uc := NewGetForecastUseCase(provider, cache, 15*time.Minute)

		input := GetForecastInput{Kind: KindMarine, Latitude: 21.17, Longitude: 72.83}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if provider.marine != 1 {
			t.Errorf("expected one marine call, got %d", provider.marine)
		}
		if _, ok := cache.entries["weather:marine:21.17:72.83"]; !ok {
			t.Errorf("expected marine cache key, got %v", cache.entries)
		}
	})

	t.Run("cache read failure degrades to upstream", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		cache := newFakeWeatherCache()
		cache.getErr = errors.New("connection refused")
		uc := NewGetForecastUseCase(provider, cache, 15*time.Minute)

		output, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83})
		if err != nil {
			t.Fatalf("expected no error when only the cache fails, got %v", err)
		}
		if output.Source != SourceUpstream {
			t.Errorf("expected source %s, got %s", SourceUpstream, output.Source)
		}
	})

	t.Run("cache write failure is not surfaced", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		cache := newFakeWeatherCache()
		cache.setErr = errors.New("readonly replica")
		uc := NewGetForecastUseCase(provider, cache, 15*time.Minute)

		if _, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83}); err != nil {
			t.Fatalf("expected no error when only the cache write fails, got %v", err)
		}
	})

	t.Run("nil cache skips caching entirely", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		uc := NewGetForecastUseCase(provider, nil, 15*time.Minute)

		output, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83})
		if err != nil {
			t.Fatalf("expected no error with nil cache, got %v", err)
		}
		if output.Source != SourceUpstream {
			t.Errorf("expected source %s, got %s", SourceUpstream, output.Source)
		}
	})

	t.Run("upstream failure maps to the upstream error code", func(t *testing.T) {
		provider := &fakeWeatherProvider{err: errors.New("503 service unavailable")}
		uc := NewGetForecastUseCase(provider, newFakeWeatherCache(), 15*time.Minute)

		_, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 21.17, Longitude: 72.83})
		if err == nil {
			t.Fatal("expected an error when upstream fails")
		}

		var wthErr *domainerror.WeatherError
		if !errors.As(err, &wthErr) {
			t.Fatalf("expected WeatherError, got %T", err)
		}
		if wthErr.Code != domainerror.ErrCodeWeatherUpstream {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeatherUpstream, wthErr.Code)
		}
	})

	t.Run("out-of-range coordinates are rejected", func(t *testing.T) {
		provider := &fakeWeatherProvider{payload: payload}
		uc := NewGetForecastUseCase(provider, newFakeWeatherCache(), 15*time.Minute)

		_, err := uc.Execute(ctx, GetForecastInput{Kind: KindForecast, Latitude: 95, Longitude: 72.83})
		if err == nil {
			t.Fatal("expected an error for out-of-range latitude")
		}

		var wthErr *domainerror.WeatherError
		if !errors.As(err, &wthErr) {
			t.Fatalf("expected WeatherError, got %T", err)
		}
		if wthErr.Code != domainerror.ErrCodeInvalidCoordinatesQuery {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCoordinatesQuery, wthErr.Code)
		}
		if provider.forecast != 0 {
			t.Errorf("expected no upstream call for invalid input, got %d", provider.forecast)
		}
	})
}
