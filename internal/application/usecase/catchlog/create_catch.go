// Package catchlog contains catch logging use cases.
package catchlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// MaxSpeciesLength is the maximum allowed length for species names.
const MaxSpeciesLength = 100

// CreateCatchInput represents the input for logging a catch.
type CreateCatchInput struct {
	UserID     uuid.UUID
	Species    string
	Quantity   int
	WeightKg   decimal.Decimal
	TotalPrice decimal.Decimal
	Latitude   *float64
	Longitude  *float64
}

// CreateCatchOutput represents the output of logging a catch.
type CreateCatchOutput struct {
	Catch *CatchOutput
}

// CreateCatchUseCase handles catch creation logic.
type CreateCatchUseCase struct {
	catchRepo adapter.CatchRepository
}

// NewCreateCatchUseCase creates a new CreateCatchUseCase instance.
func NewCreateCatchUseCase(catchRepo adapter.CatchRepository) *CreateCatchUseCase {
	return &CreateCatchUseCase{
		catchRepo: catchRepo,
	}
}

// Execute validates and persists a new catch record.
func (uc *CreateCatchUseCase) Execute(ctx context.Context, input CreateCatchInput) (*CreateCatchOutput, error) {
	species := strings.TrimSpace(input.Species)

	if err := validateCatchFields(species, input.Quantity, input.WeightKg, input.TotalPrice); err != nil {
		return nil, err
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	c := entity.NewCatch(
		input.UserID,
		species,
		input.Quantity,
		input.WeightKg,
		input.TotalPrice,
		input.Latitude,
		input.Longitude,
	)

	if err := uc.catchRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create catch: %w", err)
	}

	return &CreateCatchOutput{Catch: toCatchOutput(c)}, nil
}

// validateCatchFields enforces the catch record invariants.
func validateCatchFields(species string, quantity int, weightKg, totalPrice decimal.Decimal) error {
	if species == "" {
		return domainerror.NewCatchError(
			domainerror.ErrCodeSpeciesRequired,
			"species is required",
			domainerror.ErrSpeciesRequired,
		)
	}

	if len(species) > MaxSpeciesLength {
		return domainerror.NewCatchError(
			domainerror.ErrCodeSpeciesTooLong,
			fmt.Sprintf("species must not exceed %d characters", MaxSpeciesLength),
			domainerror.ErrSpeciesTooLong,
		)
	}

	if quantity < 1 {
		return domainerror.NewCatchError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be at least 1",
			domainerror.ErrInvalidQuantity,
		)
	}

	if weightKg.IsNegative() {
		return domainerror.NewCatchError(
			domainerror.ErrCodeNegativeWeight,
			"weight_kg must not be negative",
			domainerror.ErrNegativeWeight,
		)
	}

	if totalPrice.IsNegative() {
		return domainerror.NewCatchError(
			domainerror.ErrCodeNegativePrice,
			"total_price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

	return nil
}

// validateCoordinates checks that the optional location is either absent or
// a complete, in-range latitude/longitude pair.
func validateCoordinates(latitude, longitude *float64) error {
	if latitude == nil && longitude == nil {
		return nil
	}

	if latitude == nil || longitude == nil {
		return domainerror.NewCatchError(
			domainerror.ErrCodeInvalidCoordinates,
			"latitude and longitude must be provided together",
			domainerror.ErrInvalidCoordinates,
		)
	}

	if *latitude < -90 || *latitude > 90 || *longitude < -180 || *longitude > 180 {
		return domainerror.NewCatchError(
			domainerror.ErrCodeInvalidCoordinates,
			"latitude must be within [-90, 90] and longitude within [-180, 180]",
			domainerror.ErrInvalidCoordinates,
		)
	}

	return nil
}
