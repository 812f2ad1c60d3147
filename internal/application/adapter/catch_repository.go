// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/domain/entity"
)

// CatchFilter defines filter options for listing catches.
type CatchFilter struct {
	UserID    *uuid.UUID
	Species   string // Case-insensitive species match
	StartDate *time.Time
	EndDate   *time.Time
}

// CatchPagination defines pagination options.
type CatchPagination struct {
	Page  int
	Limit int
}

// CatchRepository defines the interface for catch persistence operations.
type CatchRepository interface {
	// Create creates a new catch record in the database.
	Create(ctx context.Context, c *entity.Catch) error

	// FindByID retrieves a catch by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Catch, error)

	// FindByFilter retrieves catches based on filter criteria with pagination,
	// newest first.
	FindByFilter(ctx context.Context, filter CatchFilter, pagination CatchPagination) (*entity.CatchListResult, error)

	// Update updates an existing catch record (administrative correction).
	Update(ctx context.Context, c *entity.Catch) error

	// Delete soft-deletes a catch record (data retention).
	Delete(ctx context.Context, id uuid.UUID) error
}
