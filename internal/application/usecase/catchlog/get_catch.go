// Package catchlog contains catch logging use cases.
package catchlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// GetCatchInput represents the input for retrieving a single catch.
type GetCatchInput struct {
	ID uuid.UUID
}

// GetCatchOutput represents the output of retrieving a single catch.
type GetCatchOutput struct {
	Catch *CatchOutput
}

// GetCatchUseCase handles single catch retrieval.
type GetCatchUseCase struct {
	catchRepo adapter.CatchRepository
}

// NewGetCatchUseCase creates a new GetCatchUseCase instance.
func NewGetCatchUseCase(catchRepo adapter.CatchRepository) *GetCatchUseCase {
	return &GetCatchUseCase{
		catchRepo: catchRepo,
	}
}

// Execute retrieves a catch by ID.
func (uc *GetCatchUseCase) Execute(ctx context.Context, input GetCatchInput) (*GetCatchOutput, error) {
	c, err := uc.catchRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCatchNotFound) {
			return nil, domainerror.NewCatchError(
				domainerror.ErrCodeCatchNotFound,
				"catch not found",
				domainerror.ErrCatchNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get catch: %w", err)
	}

	return &GetCatchOutput{Catch: toCatchOutput(c)}, nil
}
