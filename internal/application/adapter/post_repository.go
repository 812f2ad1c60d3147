// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/domain/entity"
)

// PostFilter defines filter options for listing community posts.
type PostFilter struct {
	UserID *uuid.UUID
}

// PostPagination defines pagination options.
type PostPagination struct {
	Page  int
	Limit int
}

// PostRepository defines the interface for community post persistence operations.
type PostRepository interface {
	// Create creates a new post in the database.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByFilter retrieves posts based on filter criteria with pagination,
	// newest first.
	FindByFilter(ctx context.Context, filter PostFilter, pagination PostPagination) (*entity.PostListResult, error)

	// IncrementLikes atomically increments the like count and returns the new count.
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)

	// Delete soft-deletes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}
