// Package community contains community post use cases.
package community

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// MaxContentLength is the maximum allowed length for post content.
const MaxContentLength = 2000

// PostOutput represents a community post returned by use cases.
type PostOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	ImageURLs []string
	Likes     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toPostOutput converts a Post entity to a PostOutput.
func toPostOutput(p *entity.Post) *PostOutput {
	return &PostOutput{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		ImageURLs: p.ImageURLs,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// CreatePostInput represents the input for post creation.
type CreatePostInput struct {
	UserID    uuid.UUID
	Content   string
	ImageURLs []string
}

// CreatePostOutput represents the output of post creation.
type CreatePostOutput struct {
	Post *PostOutput
}

// CreatePostUseCase handles post creation logic.
type CreatePostUseCase struct {
	postRepo adapter.PostRepository
}

// NewCreatePostUseCase creates a new CreatePostUseCase instance.
func NewCreatePostUseCase(postRepo adapter.PostRepository) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo: postRepo,
	}
}

// Execute validates and persists a new community post.
func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	content := strings.TrimSpace(input.Content)

	if content == "" {
		return nil, domainerror.NewPostError(
			domainerror.ErrCodeContentRequired,
			"content is required",
			domainerror.ErrContentRequired,
		)
	}

	if len(content) > MaxContentLength {
		return nil, domainerror.NewPostError(
			domainerror.ErrCodeContentTooLong,
			fmt.Sprintf("content must not exceed %d characters", MaxContentLength),
			domainerror.ErrContentTooLong,
		)
	}

	post := entity.NewPost(input.UserID, content, input.ImageURLs)

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &CreatePostOutput{Post: toPostOutput(post)}, nil
}
