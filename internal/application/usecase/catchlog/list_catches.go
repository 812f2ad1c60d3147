// Package catchlog contains catch logging use cases.
package catchlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
)

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 50
	// MaxPageLimit caps the requested page size.
	MaxPageLimit = 200
)

// ListCatchesInput represents the input for listing catches.
type ListCatchesInput struct {
	UserID    *uuid.UUID
	Species   string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListCatchesOutput represents the output of listing catches.
type ListCatchesOutput struct {
	Catches    []*CatchOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListCatchesUseCase handles catch listing with filters and pagination.
type ListCatchesUseCase struct {
	catchRepo adapter.CatchRepository
}

// NewListCatchesUseCase creates a new ListCatchesUseCase instance.
func NewListCatchesUseCase(catchRepo adapter.CatchRepository) *ListCatchesUseCase {
	return &ListCatchesUseCase{
		catchRepo: catchRepo,
	}
}

// Execute retrieves catches matching the filter, newest first.
func (uc *ListCatchesUseCase) Execute(ctx context.Context, input ListCatchesInput) (*ListCatchesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := adapter.CatchFilter{
		UserID:    input.UserID,
		Species:   input.Species,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	pagination := adapter.CatchPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.catchRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list catches: %w", err)
	}

	catches := make([]*CatchOutput, len(result.Catches))
	for i, c := range result.Catches {
		catches[i] = toCatchOutput(c)
	}

	return &ListCatchesOutput{
		Catches:    catches,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
