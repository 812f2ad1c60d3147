// Package dto defines data transfer objects for API requests and responses.
package dto

import "encoding/json"

// WeatherResponse wraps an opaque upstream payload with its source.
type WeatherResponse struct {
	Source string          `json:"source"`
	Data   json.RawMessage `json:"data"`
}
