// Package error defines domain-specific errors for the FishMate application.
package error

// CommonErrorCode defines error codes shared across endpoints.
type CommonErrorCode string

const (
	// ErrCodeRateLimited is returned when a client exceeds the request rate limit.
	ErrCodeRateLimited CommonErrorCode = "CMN-030001"
)
