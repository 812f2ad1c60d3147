// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

func TestCatchRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCatchRepository(db)

	lat, lon := 21.17, 72.83
	c := entity.NewCatch(uuid.New(), "Rohu", 3, decimal.NewFromFloat(4.5), decimal.NewFromInt(600), &lat, &lon)

	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, err := repo.FindByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if found.Species != "Rohu" {
		t.Errorf("expected species Rohu, got %s", found.Species)
	}
	if found.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", found.Quantity)
	}
	if !found.WeightKg.Equal(decimal.NewFromFloat(4.5)) {
		t.Errorf("expected weight 4.5, got %s", found.WeightKg)
	}
	if found.Latitude == nil || *found.Latitude != lat {
		t.Errorf("expected latitude %v, got %v", lat, found.Latitude)
	}
}

func TestCatchRepository_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCatchRepository(db)

	_, err := repo.FindByID(ctx, uuid.New())
	if !errors.Is(err, domainerror.ErrCatchNotFound) {
		t.Errorf("expected ErrCatchNotFound, got %v", err)
	}
}

func TestCatchRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by user and orders newest first", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()
		base := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

		older := seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), base)
		newer := seedCatchAt(t, db, userID, "Catla", 1, decimal.NewFromInt(2), decimal.NewFromInt(200), base.Add(2*time.Hour))
		seedCatchAt(t, db, uuid.New(), "Rohu", 9, decimal.NewFromInt(20), decimal.NewFromInt(5000), base)

		result, err := repo.FindByFilter(ctx, adapter.CatchFilter{UserID: &userID}, adapter.CatchPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 2 {
			t.Fatalf("expected total 2, got %d", result.Total)
		}
		if result.Catches[0].ID != newer.ID {
			t.Errorf("expected newest catch first, got %s", result.Catches[0].ID)
		}
		if result.Catches[1].ID != older.ID {
			t.Errorf("expected oldest catch last, got %s", result.Catches[1].ID)
		}
	})

	t.Run("species filter is case-insensitive", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()
		now := time.Now().UTC()

		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), now)
		seedCatchAt(t, db, userID, "Catla", 1, decimal.NewFromInt(2), decimal.NewFromInt(200), now)

		result, err := repo.FindByFilter(ctx, adapter.CatchFilter{Species: "rohu"}, adapter.CatchPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 1 {
			t.Fatalf("expected total 1, got %d", result.Total)
		}
		if result.Catches[0].Species != "Rohu" {
			t.Errorf("expected Rohu, got %s", result.Catches[0].Species)
		}
	})

	t.Run("date range filter bounds the result", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()

		inRange := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
		seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), inRange)
		seedCatchAt(t, db, userID, "Rohu", 4, decimal.NewFromInt(6), decimal.NewFromInt(600), inRange.AddDate(0, 0, -10))

		start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)
		result, err := repo.FindByFilter(ctx, adapter.CatchFilter{UserID: &userID, StartDate: &start, EndDate: &end}, adapter.CatchPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 1 {
			t.Errorf("expected total 1, got %d", result.Total)
		}
	})

	t.Run("paginates and reports total pages", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()
		base := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

		for i := 0; i < 5; i++ {
			seedCatchAt(t, db, userID, "Rohu", 1, decimal.NewFromInt(1), decimal.NewFromInt(100), base.Add(time.Duration(i)*time.Hour))
		}

		result, err := repo.FindByFilter(ctx, adapter.CatchFilter{UserID: &userID}, adapter.CatchPagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 5 {
			t.Errorf("expected total 5, got %d", result.Total)
		}
		if len(result.Catches) != 2 {
			t.Errorf("expected 2 catches on page 2, got %d", len(result.Catches))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})
}

func TestCatchRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates an existing record", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()

		c := seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), time.Now().UTC())

		c.Quantity = 7
		c.Species = "Catla"
		c.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, err := repo.FindByID(ctx, c.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Quantity != 7 || found.Species != "Catla" {
			t.Errorf("expected updated record, got %+v", found)
		}
	})

	t.Run("unknown record yields ErrCatchNotFound", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)

		c := entity.NewCatch(uuid.New(), "Rohu", 1, decimal.NewFromInt(1), decimal.NewFromInt(100), nil, nil)
		err := repo.Update(ctx, c)
		if !errors.Is(err, domainerror.ErrCatchNotFound) {
			t.Errorf("expected ErrCatchNotFound, got %v", err)
		}
	})
}

func TestCatchRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deleted record disappears from reads", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)
		userID := uuid.New()

		c := seedCatchAt(t, db, userID, "Rohu", 2, decimal.NewFromInt(3), decimal.NewFromInt(300), time.Now().UTC())

		if err := repo.Delete(ctx, c.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := repo.FindByID(ctx, c.ID); !errors.Is(err, domainerror.ErrCatchNotFound) {
			t.Errorf("expected ErrCatchNotFound after delete, got %v", err)
		}

		// The row is retained, only marked deleted
		var count int64
		if err := db.Table("catches").Where("id = ?", c.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count raw rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected soft-deleted row retained, got %d rows", count)
		}
	})

	t.Run("unknown record yields ErrCatchNotFound", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatchRepository(db)

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrCatchNotFound) {
			t.Errorf("expected ErrCatchNotFound, got %v", err)
		}
	})
}
