// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/domain/entity"
)

// UserRepository defines the interface for user profile persistence operations.
type UserRepository interface {
	// Create creates a new user profile in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Update updates an existing user profile.
	Update(ctx context.Context, user *entity.User) error
}
