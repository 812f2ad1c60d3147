// Package error defines domain-specific errors for the FishMate application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidUserID is returned when the user id is missing or not a valid identifier.
	ErrInvalidUserID = errors.New("user id must be a valid identifier")

	// ErrStoreUnavailable is returned when the catch store query fails or times out.
	ErrStoreUnavailable = errors.New("catch store is unavailable")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidUserID AnalyticsErrorCode = "ANL-010001"

	// Internal errors (99XXXX)
	ErrCodeStoreUnavailable AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
// A user with zero catch records is never an error: the aggregator answers
// with a zero/empty-shaped result instead.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
