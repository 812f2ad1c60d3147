// Package error defines domain-specific errors for the FishMate application.
package error

import "errors"

// Weather proxy domain errors.
var (
	// ErrInvalidCoordinatesQuery is returned when latitude/longitude query
	// parameters are missing or out of range.
	ErrInvalidCoordinatesQuery = errors.New("latitude and longitude must be valid coordinates")

	// ErrWeatherUpstream is returned when the upstream forecast provider fails.
	ErrWeatherUpstream = errors.New("weather provider request failed")
)

// WeatherErrorCode defines error codes for weather proxy errors.
type WeatherErrorCode string

const (
	ErrCodeInvalidCoordinatesQuery WeatherErrorCode = "WTH-010001"

	// Upstream errors (98XXXX)
	ErrCodeWeatherUpstream WeatherErrorCode = "WTH-980001"
)

// WeatherError represents a weather proxy error with code and message.
type WeatherError struct {
	Code    WeatherErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WeatherError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WeatherError) Unwrap() error {
	return e.Err
}

// NewWeatherError creates a new WeatherError with the given code and message.
func NewWeatherError(code WeatherErrorCode, message string, err error) *WeatherError {
	return &WeatherError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
