// Package adapters implements external service integrations.
package adapters

import (
	"time"

	"github.com/fishmate/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the real time.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
