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

// DeleteCatchInput represents the input for a retention delete.
type DeleteCatchInput struct {
	ID uuid.UUID
}

// DeleteCatchUseCase handles retention deletes of catch records.
type DeleteCatchUseCase struct {
	catchRepo adapter.CatchRepository
}

// NewDeleteCatchUseCase creates a new DeleteCatchUseCase instance.
func NewDeleteCatchUseCase(catchRepo adapter.CatchRepository) *DeleteCatchUseCase {
	return &DeleteCatchUseCase{
		catchRepo: catchRepo,
	}
}

// Execute soft-deletes a catch record.
func (uc *DeleteCatchUseCase) Execute(ctx context.Context, input DeleteCatchInput) error {
	if _, err := uc.catchRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrCatchNotFound) {
			return domainerror.NewCatchError(
				domainerror.ErrCodeCatchNotFound,
				"catch not found",
				domainerror.ErrCatchNotFound,
			)
		}
		return fmt.Errorf("failed to load catch for deletion: %w", err)
	}

	if err := uc.catchRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete catch: %w", err)
	}

	return nil
}
