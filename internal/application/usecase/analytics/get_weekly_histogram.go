// Package analytics contains the catch analytics aggregation use cases.
package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// GetWeeklyHistogramInput represents the input for the weekly histogram.
type GetWeeklyHistogramInput struct {
	UserID uuid.UUID
}

// HistogramEntry is one day of the weekly histogram.
type HistogramEntry struct {
	Day      string
	Quantity int
}

// GetWeeklyHistogramOutput is always exactly seven entries, Monday-first,
// with zero quantities for days without catches.
type GetWeeklyHistogramOutput struct {
	Days []HistogramEntry
}

// GetWeeklyHistogramUseCase handles the current-week quantity histogram.
type GetWeeklyHistogramUseCase struct {
	analyticsRepo AnalyticsRepository
	clock         adapter.Clock
}

// NewGetWeeklyHistogramUseCase creates a new GetWeeklyHistogramUseCase instance.
func NewGetWeeklyHistogramUseCase(analyticsRepo AnalyticsRepository, clock adapter.Clock) *GetWeeklyHistogramUseCase {
	return &GetWeeklyHistogramUseCase{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

// Execute buckets the current week's catches by day of week and projects them
// into a fixed Monday-first sequence.
func (uc *GetWeeklyHistogramUseCase) Execute(ctx context.Context, input GetWeeklyHistogramInput) (*GetWeeklyHistogramOutput, error) {
	if err := validateUserID(input.UserID); err != nil {
		return nil, err
	}

	start, end := WeekBounds(uc.clock.Now())

	events, err := uc.analyticsRepo.GetCatchesBetween(ctx, input.UserID, start, end)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeStoreUnavailable,
			"failed to load catches for the current week",
			err,
		)
	}

	// Accumulate Sunday-first (the store's day-of-week numbering), then
	// rotate so the output starts on Monday.
	var sundayFirst [DaysPerWeek]int
	for _, ev := range events {
		sundayFirst[SundayFirstIndex(ev.CreatedAt)] += ev.Quantity
	}
	mondayFirst := RotateToMondayFirst(sundayFirst)

	days := make([]HistogramEntry, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		days[i] = HistogramEntry{
			Day:      DayName(i),
			Quantity: mondayFirst[i],
		}
	}

	return &GetWeeklyHistogramOutput{Days: days}, nil
}
