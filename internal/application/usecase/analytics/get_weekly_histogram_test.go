// Package analytics contains the catch analytics aggregation use cases.
package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// fixedClock returns a constant time.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestGetWeeklyHistogramUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// Wednesday 2025-06-18; the surrounding week is Mon 16th .. Sun 22nd.
	clock := fixedClock{now: time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)}

	t.Run("no catches yield seven zero entries", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{}
		uc := NewGetWeeklyHistogramUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Days) != DaysPerWeek {
			t.Fatalf("expected %d entries, got %d", DaysPerWeek, len(output.Days))
		}
		for i, entry := range output.Days {
			if entry.Quantity != 0 {
				t.Errorf("expected zero quantity at index %d, got %d", i, entry.Quantity)
			}
		}
		if output.Days[0].Day != "Monday" {
			t.Errorf("expected first entry Monday, got %s", output.Days[0].Day)
		}
		if output.Days[6].Day != "Sunday" {
			t.Errorf("expected last entry Sunday, got %s", output.Days[6].Day)
		}
	})

	t.Run("catches are bucketed by weekday in Monday-first order", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{
			events: []RawCatchEvent{
				// Wednesday 18th, two catches
				{CreatedAt: time.Date(2025, 6, 18, 8, 0, 0, 0, time.UTC), Quantity: 3},
				{CreatedAt: time.Date(2025, 6, 18, 17, 0, 0, 0, time.UTC), Quantity: 2},
				// Sunday 22nd
				{CreatedAt: time.Date(2025, 6, 22, 6, 0, 0, 0, time.UTC), Quantity: 4},
			},
		}
		uc := NewGetWeeklyHistogramUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Wednesday is Monday-first index 2
		if output.Days[2].Quantity != 5 {
			t.Errorf("expected Wednesday quantity 5, got %d", output.Days[2].Quantity)
		}
		// Sunday is Monday-first index 6
		if output.Days[6].Quantity != 4 {
			t.Errorf("expected Sunday quantity 4, got %d", output.Days[6].Quantity)
		}
		// Everything else stays zero
		for _, i := range []int{0, 1, 3, 4, 5} {
			if output.Days[i].Quantity != 0 {
				t.Errorf("expected zero quantity at index %d, got %d", i, output.Days[i].Quantity)
			}
		}
	})

	t.Run("store receives the bounds of the clock's current week", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{}
		uc := NewGetWeeklyHistogramUseCase(repo, clock)

		if _, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: userID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		wantStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !repo.lastStart.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, repo.lastStart)
		}
		wantEnd := time.Date(2025, 6, 22, 23, 59, 59, 999999999, time.UTC)
		if !repo.lastEnd.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, repo.lastEnd)
		}
	})

	t.Run("nil user id is rejected", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{}
		uc := NewGetWeeklyHistogramUseCase(repo, clock)

		_, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: uuid.Nil})
		if err == nil {
			t.Fatal("expected an error for nil user id")
		}

		var anlErr *domainerror.AnalyticsError
		if !errors.As(err, &anlErr) {
			t.Fatalf("expected AnalyticsError, got %T", err)
		}
		if anlErr.Code != domainerror.ErrCodeInvalidUserID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidUserID, anlErr.Code)
		}
	})

	t.Run("store failure surfaces as a store unavailable error", func(t *testing.T) {
		repo := &fakeAnalyticsRepository{err: errors.New("timeout")}
		uc := NewGetWeeklyHistogramUseCase(repo, clock)

		_, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error when the store fails")
		}

		var anlErr *domainerror.AnalyticsError
		if !errors.As(err, &anlErr) {
			t.Fatalf("expected AnalyticsError, got %T", err)
		}
		if anlErr.Code != domainerror.ErrCodeStoreUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeStoreUnavailable, anlErr.Code)
		}
	})

	t.Run("Sunday clock still produces a Monday-first week", func(t *testing.T) {
		sundayClock := fixedClock{now: time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)}
		repo := &fakeAnalyticsRepository{
			events: []RawCatchEvent{
				// Monday 16th
				{CreatedAt: time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC), Quantity: 1},
			},
		}
		uc := NewGetWeeklyHistogramUseCase(repo, sundayClock)

		output, err := uc.Execute(ctx, GetWeeklyHistogramInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Days[0].Quantity != 1 {
			t.Errorf("expected Monday quantity 1, got %d", output.Days[0].Quantity)
		}

		wantStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !repo.lastStart.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, repo.lastStart)
		}
	})
}
