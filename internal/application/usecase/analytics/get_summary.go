// Package analytics contains the catch analytics aggregation use cases.
package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// GetSummaryInput represents the input for getting a lifetime catch summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the lifetime catch summary for a user.
type GetSummaryOutput struct {
	TotalWeight       decimal.Decimal
	TotalValue        decimal.Decimal
	AveragePricePerKg decimal.Decimal
}

// GetSummaryUseCase handles the lifetime summary aggregation.
type GetSummaryUseCase struct {
	analyticsRepo AnalyticsRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(analyticsRepo AnalyticsRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes total weight, total value and average price per kg across
// all of a user's catches. A user with no records yields an all-zero summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validateUserID(input.UserID); err != nil {
		return nil, err
	}

	totals, err := uc.analyticsRepo.GetCatchTotals(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeStoreUnavailable,
			"failed to aggregate catch totals",
			err,
		)
	}

	// Guard the division: a zero total weight means an average of exactly
	// zero, regardless of total value.
	average := decimal.Zero
	if !totals.TotalWeight.IsZero() {
		average = totals.TotalValue.Div(totals.TotalWeight)
	}

	return &GetSummaryOutput{
		TotalWeight:       totals.TotalWeight,
		TotalValue:        totals.TotalValue,
		AveragePricePerKg: average,
	}, nil
}

// validateUserID rejects a syntactically invalid user identifier before any
// store access happens.
func validateUserID(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidUserID,
			"user id must be a valid identifier",
			domainerror.ErrInvalidUserID,
		)
	}
	return nil
}
