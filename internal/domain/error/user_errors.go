// Package error defines domain-specific errors for the FishMate application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user profile does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNameRequired is returned when the profile name is empty.
	ErrNameRequired = errors.New("name is required")
)

// UserErrorCode defines error codes for user profile errors.
type UserErrorCode string

const (
	ErrCodeNameRequired UserErrorCode = "USR-010001"

	ErrCodeUserNotFound UserErrorCode = "USR-020001"

	ErrCodeUserInternalError UserErrorCode = "USR-990001"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
