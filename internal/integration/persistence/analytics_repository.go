// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fishmate/backend/internal/application/usecase/analytics"
)

// analyticsRepository implements the analytics.AnalyticsRepository interface.
// All queries are read-only and portable across the production Postgres
// database and the in-memory SQLite database used in tests.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// GetCatchTotals returns the lifetime weight and value sums for a user.
func (r *analyticsRepository) GetCatchTotals(
	ctx context.Context,
	userID uuid.UUID,
) (*analytics.RawCatchTotals, error) {
	var result struct {
		TotalWeight decimal.Decimal `gorm:"column:total_weight"`
		TotalValue  decimal.Decimal `gorm:"column:total_value"`
	}

	query := `
		SELECT
			COALESCE(SUM(weight_kg), 0) as total_weight,
			COALESCE(SUM(total_price), 0) as total_value
		FROM catches
		WHERE user_id = ?
			AND deleted_at IS NULL
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get catch totals: %w", err)
	}

	return &analytics.RawCatchTotals{
		TotalWeight: result.TotalWeight,
		TotalValue:  result.TotalValue,
	}, nil
}

// GetCatchesBetween returns catch events for a user within [start, end] inclusive.
func (r *analyticsRepository) GetCatchesBetween(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]analytics.RawCatchEvent, error) {
	var results []struct {
		CreatedAt time.Time `gorm:"column:created_at"`
		Quantity  int       `gorm:"column:quantity"`
	}

	err := r.db.WithContext(ctx).
		Table("catches").
		Select("created_at, quantity").
		Where("user_id = ?", userID).
		Where("created_at >= ?", start).
		Where("created_at <= ?", end).
		Where("deleted_at IS NULL").
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get catches in range: %w", err)
	}

	events := make([]analytics.RawCatchEvent, len(results))
	for i, res := range results {
		events[i] = analytics.RawCatchEvent{
			CreatedAt: res.CreatedAt,
			Quantity:  res.Quantity,
		}
	}

	return events, nil
}

// GetSpeciesTotals returns per-species quantity sums for a user, largest first.
func (r *analyticsRepository) GetSpeciesTotals(
	ctx context.Context,
	userID uuid.UUID,
) ([]analytics.RawSpeciesTotal, error) {
	var results []struct {
		Species  string `gorm:"column:species"`
		Quantity int    `gorm:"column:total_quantity"`
	}

	query := `
		SELECT
			species,
			SUM(quantity) as total_quantity
		FROM catches
		WHERE user_id = ?
			AND deleted_at IS NULL
		GROUP BY species
		ORDER BY total_quantity DESC
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get species totals: %w", err)
	}

	totals := make([]analytics.RawSpeciesTotal, len(results))
	for i, res := range results {
		totals[i] = analytics.RawSpeciesTotal{
			Species:  res.Species,
			Quantity: res.Quantity,
		}
	}

	return totals, nil
}
