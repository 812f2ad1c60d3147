// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so week-boundary computations can be
// tested deterministically.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}
