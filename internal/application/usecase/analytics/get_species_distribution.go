// Package analytics contains the catch analytics aggregation use cases.
package analytics

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// GetSpeciesDistributionInput represents the input for the species distribution.
type GetSpeciesDistributionInput struct {
	UserID uuid.UUID
}

// SpeciesEntry is the summed quantity for one species.
type SpeciesEntry struct {
	Species  string
	Quantity int
}

// GetSpeciesDistributionOutput holds one entry per species the user has
// actually caught. Unlike the weekly histogram there is no zero-filling:
// species without records are simply absent.
type GetSpeciesDistributionOutput struct {
	Species []SpeciesEntry
}

// GetSpeciesDistributionUseCase handles the per-species quantity distribution.
type GetSpeciesDistributionUseCase struct {
	analyticsRepo AnalyticsRepository
}

// NewGetSpeciesDistributionUseCase creates a new GetSpeciesDistributionUseCase instance.
func NewGetSpeciesDistributionUseCase(analyticsRepo AnalyticsRepository) *GetSpeciesDistributionUseCase {
	return &GetSpeciesDistributionUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute returns the per-species quantity sums for a user. An empty result
// is a valid answer, not an error.
func (uc *GetSpeciesDistributionUseCase) Execute(ctx context.Context, input GetSpeciesDistributionInput) (*GetSpeciesDistributionOutput, error) {
	if err := validateUserID(input.UserID); err != nil {
		return nil, err
	}

	totals, err := uc.analyticsRepo.GetSpeciesTotals(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeStoreUnavailable,
			"failed to aggregate species totals",
			err,
		)
	}

	species := make([]SpeciesEntry, 0, len(totals))
	for _, t := range totals {
		species = append(species, SpeciesEntry{
			Species:  t.Species,
			Quantity: t.Quantity,
		})
	}

	return &GetSpeciesDistributionOutput{Species: species}, nil
}
