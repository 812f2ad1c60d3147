// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catch represents a single logged fishing event in the FishMate system.
// A catch is immutable once logged; updates only happen through the
// administrative correction flow and deletes through data retention.
type Catch struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Species    string
	Quantity   int             // Number of individual fish, always >= 1
	WeightKg   decimal.Decimal // Total weight for the record, >= 0
	TotalPrice decimal.Decimal // Total sale/estimated value, >= 0
	Latitude   *float64        // Optional catch location
	Longitude  *float64
	CreatedAt  time.Time // Time axis for weekly analytics bucketing
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support (retention)
}

// NewCatch creates a new Catch entity.
func NewCatch(
	userID uuid.UUID,
	species string,
	quantity int,
	weightKg decimal.Decimal,
	totalPrice decimal.Decimal,
	latitude *float64,
	longitude *float64,
) *Catch {
	now := time.Now().UTC()

	return &Catch{
		ID:         uuid.New(),
		UserID:     userID,
		Species:    species,
		Quantity:   quantity,
		WeightKg:   weightKg,
		TotalPrice: totalPrice,
		Latitude:   latitude,
		Longitude:  longitude,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CatchListResult represents the result of listing catches.
type CatchListResult struct {
	Catches    []*Catch
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
