package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for freezing the current time in scenarios.
// It implements the application's Clock port.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock starting at the real current time.
func NewClock() *Clock {
	return &Clock{now: time.Now().UTC()}
}

// Set freezes the clock at the given time.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Now returns the frozen time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
