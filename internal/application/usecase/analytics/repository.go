// Package analytics contains the catch analytics aggregation use cases.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawCatchTotals holds lifetime weight/value sums straight from the store.
type RawCatchTotals struct {
	TotalWeight decimal.Decimal
	TotalValue  decimal.Decimal
}

// RawCatchEvent is a single catch row reduced to what weekly bucketing needs.
type RawCatchEvent struct {
	CreatedAt time.Time
	Quantity  int
}

// RawSpeciesTotal holds the summed quantity for one species.
type RawSpeciesTotal struct {
	Species  string
	Quantity int
}

// AnalyticsRepository defines the read-only query surface the aggregator
// needs from the catch store. Implementations never mutate records.
type AnalyticsRepository interface {
	// GetCatchTotals returns the lifetime weight and value sums for a user.
	// A user with no records yields zero totals, not an error.
	GetCatchTotals(ctx context.Context, userID uuid.UUID) (*RawCatchTotals, error)

	// GetCatchesBetween returns the catch events for a user whose creation
	// time falls within [start, end] inclusive.
	GetCatchesBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]RawCatchEvent, error)

	// GetSpeciesTotals returns the per-species quantity sums for a user.
	// Species with no records are absent, never zero-filled.
	GetSpeciesTotals(ctx context.Context, userID uuid.UUID) ([]RawSpeciesTotal, error)
}
