// Package error defines domain-specific errors for the FishMate application.
package error

import "errors"

// Community post domain errors.
var (
	// ErrPostNotFound is returned when a post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrContentRequired is returned when the post content is empty.
	ErrContentRequired = errors.New("content is required")

	// ErrContentTooLong is returned when content exceeds the maximum length.
	ErrContentTooLong = errors.New("content is too long")
)

// PostErrorCode defines error codes for community post errors.
type PostErrorCode string

const (
	ErrCodeContentRequired PostErrorCode = "PST-010001"
	ErrCodeContentTooLong  PostErrorCode = "PST-010002"

	ErrCodePostNotFound PostErrorCode = "PST-020001"

	ErrCodePostInternalError PostErrorCode = "PST-990001"
)

// PostError represents a community post error with code and message.
type PostError struct {
	Code    PostErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PostError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PostError) Unwrap() error {
	return e.Err
}

// NewPostError creates a new PostError with the given code and message.
func NewPostError(code PostErrorCode, message string, err error) *PostError {
	return &PostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
