// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAnalyticsRepository_GetCatchTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("sums weight and value across all records", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()
		now := time.Now().UTC()

		seedCatchAt(t, db, userID, "Rohu", 3, decimal.NewFromFloat(4.5), decimal.NewFromInt(600), now)
		seedCatchAt(t, db, userID, "Catla", 1, decimal.NewFromFloat(2.5), decimal.NewFromInt(200), now)

		totals, err := repo.GetCatchTotals(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !totals.TotalWeight.Equal(decimal.NewFromFloat(7)) {
			t.Errorf("expected total weight 7, got %s", totals.TotalWeight)
		}
		if !totals.TotalValue.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected total value 800, got %s", totals.TotalValue)
		}
	})

	t.Run("user with no records gets zero totals", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)

		totals, err := repo.GetCatchTotals(ctx, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !totals.TotalWeight.IsZero() {
			t.Errorf("expected zero total weight, got %s", totals.TotalWeight)
		}
		if !totals.TotalValue.IsZero() {
			t.Errorf("expected zero total value, got %s", totals.TotalValue)
		}
	})

	t.Run("other users' records are excluded", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()
		now := time.Now().UTC()

		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), now)
		seedCatchAt(t, db, uuid.New(), "Rohu", 9, decimal.NewFromInt(20), decimal.NewFromInt(5000), now)

		totals, err := repo.GetCatchTotals(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !totals.TotalWeight.Equal(decimal.NewFromInt(3)) {
			t.Errorf("expected total weight 3, got %s", totals.TotalWeight)
		}
	})

	t.Run("soft-deleted records are excluded", func(t *testing.T) {
		db := newTestDB(t)
		catchRepo := NewCatchRepository(db)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()
		now := time.Now().UTC()

		kept := seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), now)
		removed := seedCatchAt(t, db, userID, "Catla", 5, decimal.NewFromInt(10), decimal.NewFromInt(900), now)
		_ = kept

		if err := catchRepo.Delete(ctx, removed.ID); err != nil {
			t.Fatalf("failed to delete catch: %v", err)
		}

		totals, err := repo.GetCatchTotals(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !totals.TotalWeight.Equal(decimal.NewFromInt(3)) {
			t.Errorf("expected total weight 3 after soft delete, got %s", totals.TotalWeight)
		}
	})
}

func TestAnalyticsRepository_GetCatchesBetween(t *testing.T) {
	ctx := context.Background()

	// Week of Monday 2025-06-16 .. Sunday 2025-06-22
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	t.Run("returns records inside the range inclusive of both ends", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()

		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), weekStart)
		seedCatchAt(t, db, userID, "Catla", 4, decimal.NewFromInt(6), decimal.NewFromInt(700),
			time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC))

		events, err := repo.GetCatchesBetween(ctx, userID, weekStart, weekEnd)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
	})

	t.Run("record at the next week's Monday midnight is excluded", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()

		nextMonday := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), nextMonday)

		events, err := repo.GetCatchesBetween(ctx, userID, weekStart, weekEnd)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(events) != 0 {
			t.Errorf("expected boundary record excluded, got %d events", len(events))
		}
	})

	t.Run("records before the week are excluded", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()

		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300),
			weekStart.Add(-time.Hour))

		events, err := repo.GetCatchesBetween(ctx, userID, weekStart, weekEnd)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(events) != 0 {
			t.Errorf("expected earlier record excluded, got %d events", len(events))
		}
	})
}

func TestAnalyticsRepository_GetSpeciesTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("sums quantities per species across multiple records", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		userID := uuid.New()
		now := time.Now().UTC()

		seedCatchAt(t, db, userID, "Rohu", 3, decimal.NewFromInt(4), decimal.NewFromInt(400), now)
		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), now.Add(-time.Hour))
		seedCatchAt(t, db, userID, "Catla", 1, decimal.NewFromInt(2), decimal.NewFromInt(200), now)

		totals, err := repo.GetSpeciesTotals(ctx, userID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(totals) != 2 {
			t.Fatalf("expected 2 species, got %d", len(totals))
		}

		// Ordered by summed quantity, largest first
		if totals[0].Species != "Rohu" || totals[0].Quantity != 5 {
			t.Errorf("expected Rohu with quantity 5 first, got %+v", totals[0])
		}
		if totals[1].Species != "Catla" || totals[1].Quantity != 1 {
			t.Errorf("expected Catla with quantity 1, got %+v", totals[1])
		}
	})

	t.Run("user with no records gets an empty result", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)

		totals, err := repo.GetSpeciesTotals(ctx, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(totals) != 0 {
			t.Errorf("expected no species, got %+v", totals)
		}
	})
}
