// Package community contains community post use cases.
package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// DeletePostInput represents the input for deleting a post.
type DeletePostInput struct {
	PostID uuid.UUID
}

// DeletePostUseCase handles post deletion.
type DeletePostUseCase struct {
	postRepo adapter.PostRepository
}

// NewDeletePostUseCase creates a new DeletePostUseCase instance.
func NewDeletePostUseCase(postRepo adapter.PostRepository) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo: postRepo,
	}
}

// Execute soft-deletes a post.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	if _, err := uc.postRepo.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, domainerror.ErrPostNotFound) {
			return domainerror.NewPostError(
				domainerror.ErrCodePostNotFound,
				"post not found",
				domainerror.ErrPostNotFound,
			)
		}
		return fmt.Errorf("failed to load post for deletion: %w", err)
	}

	if err := uc.postRepo.Delete(ctx, input.PostID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
