// Package community contains community post use cases.
package community

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
)

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the requested page size.
	MaxPageLimit = 100
)

// ListPostsInput represents the input for listing posts.
type ListPostsInput struct {
	UserID *uuid.UUID
	Page   int
	Limit  int
}

// ListPostsOutput represents the output of listing posts.
type ListPostsOutput struct {
	Posts      []*PostOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListPostsUseCase handles paginated post listing.
type ListPostsUseCase struct {
	postRepo adapter.PostRepository
}

// NewListPostsUseCase creates a new ListPostsUseCase instance.
func NewListPostsUseCase(postRepo adapter.PostRepository) *ListPostsUseCase {
	return &ListPostsUseCase{
		postRepo: postRepo,
	}
}

// Execute retrieves posts, newest first.
func (uc *ListPostsUseCase) Execute(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error) {
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

	result, err := uc.postRepo.FindByFilter(
		ctx,
		adapter.PostFilter{UserID: input.UserID},
		adapter.PostPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*PostOutput, len(result.Posts))
	for i, p := range result.Posts {
		posts[i] = toPostOutput(p)
	}

	return &ListPostsOutput{
		Posts:      posts,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
