// Package adapters implements external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fishmate/backend/config"
	"github.com/fishmate/backend/internal/application/adapter"
)

// openMeteoClient implements adapter.WeatherProvider against the Open-Meteo
// HTTP API. The response body is treated as an opaque payload.
type openMeteoClient struct {
	forecastBaseURL string
	marineBaseURL   string
	httpClient      *http.Client
}

// NewOpenMeteoClient creates a new Open-Meteo weather provider.
func NewOpenMeteoClient(cfg *config.WeatherConfig) adapter.WeatherProvider {
	return &openMeteoClient{
		forecastBaseURL: cfg.ForecastBaseURL,
		marineBaseURL:   cfg.MarineBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// GetForecast fetches the weather forecast for the given coordinates.
func (c *openMeteoClient) GetForecast(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current_weather", "true")
	params.Set("hourly", "temperature_2m,precipitation,wind_speed_10m,wind_direction_10m")
	params.Set("daily", "sunrise,sunset")
	params.Set("timezone", "auto")

	return c.get(ctx, c.forecastBaseURL, params)
}

// GetMarine fetches the marine/tide forecast for the given coordinates.
func (c *openMeteoClient) GetMarine(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("hourly", "wave_height,wave_direction,sea_level_height_msl")
	params.Set("timezone", "auto")

	return c.get(ctx, c.marineBaseURL, params)
}

func (c *openMeteoClient) get(ctx context.Context, baseURL string, params url.Values) (json.RawMessage, error) {
	reqURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d after %s", resp.StatusCode, time.Since(start))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("weather provider returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
