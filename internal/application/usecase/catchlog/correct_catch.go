// Package catchlog contains catch logging use cases.
package catchlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// CorrectCatchInput represents an administrative correction to a catch
// record. Nil fields are left unchanged; catches are otherwise immutable.
type CorrectCatchInput struct {
	ID         uuid.UUID
	Species    *string
	Quantity   *int
	WeightKg   *decimal.Decimal
	TotalPrice *decimal.Decimal
	Latitude   *float64
	Longitude  *float64
}

// CorrectCatchOutput represents the output of a catch correction.
type CorrectCatchOutput struct {
	Catch *CatchOutput
}

// CorrectCatchUseCase handles administrative catch corrections.
type CorrectCatchUseCase struct {
	catchRepo adapter.CatchRepository
}

// NewCorrectCatchUseCase creates a new CorrectCatchUseCase instance.
func NewCorrectCatchUseCase(catchRepo adapter.CatchRepository) *CorrectCatchUseCase {
	return &CorrectCatchUseCase{
		catchRepo: catchRepo,
	}
}

// Execute applies a correction, re-validating the record invariants on the
// corrected values.
func (uc *CorrectCatchUseCase) Execute(ctx context.Context, input CorrectCatchInput) (*CorrectCatchOutput, error) {
	c, err := uc.catchRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCatchNotFound) {
			return nil, domainerror.NewCatchError(
				domainerror.ErrCodeCatchNotFound,
				"catch not found",
				domainerror.ErrCatchNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load catch for correction: %w", err)
	}

	if input.Species != nil {
		c.Species = strings.TrimSpace(*input.Species)
	}
	if input.Quantity != nil {
		c.Quantity = *input.Quantity
	}
	if input.WeightKg != nil {
		c.WeightKg = *input.WeightKg
	}
	if input.TotalPrice != nil {
		c.TotalPrice = *input.TotalPrice
	}
	if input.Latitude != nil || input.Longitude != nil {
		c.Latitude = input.Latitude
		c.Longitude = input.Longitude
	}

	if err := validateCatchFields(c.Species, c.Quantity, c.WeightKg, c.TotalPrice); err != nil {
		return nil, err
	}
	if err := validateCoordinates(c.Latitude, c.Longitude); err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now().UTC()

	if err := uc.catchRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update catch: %w", err)
	}

	return &CorrectCatchOutput{Catch: toCatchOutput(c)}, nil
}
