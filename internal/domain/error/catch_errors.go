// Package error defines domain-specific errors for the FishMate application.
package error

import "errors"

// Catch domain errors.
var (
	// ErrCatchNotFound is returned when a catch record does not exist.
	ErrCatchNotFound = errors.New("catch not found")

	// ErrSpeciesRequired is returned when species is empty.
	ErrSpeciesRequired = errors.New("species is required")

	// ErrSpeciesTooLong is returned when species exceeds the maximum length.
	ErrSpeciesTooLong = errors.New("species is too long")

	// ErrInvalidQuantity is returned when quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrNegativeWeight is returned when weight is negative.
	ErrNegativeWeight = errors.New("weight must not be negative")

	// ErrNegativePrice is returned when total price is negative.
	ErrNegativePrice = errors.New("total price must not be negative")

	// ErrInvalidCoordinates is returned when latitude/longitude are out of range
	// or only one of the pair is provided.
	ErrInvalidCoordinates = errors.New("invalid catch coordinates")
)

// CatchErrorCode defines error codes for catch errors.
// Format: CTH-XXYYYY where XX is category and YYYY is specific error.
type CatchErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSpeciesRequired    CatchErrorCode = "CTH-010001"
	ErrCodeSpeciesTooLong     CatchErrorCode = "CTH-010002"
	ErrCodeInvalidQuantity    CatchErrorCode = "CTH-010003"
	ErrCodeNegativeWeight     CatchErrorCode = "CTH-010004"
	ErrCodeNegativePrice      CatchErrorCode = "CTH-010005"
	ErrCodeInvalidCoordinates CatchErrorCode = "CTH-010006"

	// Not found errors (02XXXX)
	ErrCodeCatchNotFound CatchErrorCode = "CTH-020001"

	// Internal errors (99XXXX)
	ErrCodeCatchInternalError CatchErrorCode = "CTH-990001"
)

// CatchError represents a catch error with code and message.
type CatchError struct {
	Code    CatchErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatchError) Unwrap() error {
	return e.Err
}

// NewCatchError creates a new CatchError with the given code and message.
func NewCatchError(code CatchErrorCode, message string, err error) *CatchError {
	return &CatchError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
