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

// LikePostInput represents the input for liking a post.
type LikePostInput struct {
	PostID uuid.UUID
}

// LikePostOutput represents the output of liking a post.
type LikePostOutput struct {
	Likes int
}

// LikePostUseCase handles post like increments.
type LikePostUseCase struct {
	postRepo adapter.PostRepository
}

// NewLikePostUseCase creates a new LikePostUseCase instance.
func NewLikePostUseCase(postRepo adapter.PostRepository) *LikePostUseCase {
	return &LikePostUseCase{
		postRepo: postRepo,
	}
}

// Execute increments the like count for a post and returns the new count.
func (uc *LikePostUseCase) Execute(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	likes, err := uc.postRepo.IncrementLikes(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPostNotFound) {
			return nil, domainerror.NewPostError(
				domainerror.ErrCodePostNotFound,
				"post not found",
				domainerror.ErrPostNotFound,
			)
		}
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	return &LikePostOutput{Likes: likes}, nil
}
