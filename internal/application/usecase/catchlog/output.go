// Package catchlog contains catch logging use cases.
package catchlog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/domain/entity"
)

// CatchOutput represents a catch record returned by use cases.
type CatchOutput struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Species    string
	Quantity   int
	WeightKg   decimal.Decimal
	TotalPrice decimal.Decimal
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toCatchOutput converts a Catch entity to a CatchOutput.
func toCatchOutput(c *entity.Catch) *CatchOutput {
	return &CatchOutput{
		ID:         c.ID,
		UserID:     c.UserID,
		Species:    c.Species,
		Quantity:   c.Quantity,
		WeightKg:   c.WeightKg,
		TotalPrice: c.TotalPrice,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
