// Package profile contains user profile use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/adapter"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for profile updates. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Name      *string
	Email     *string
	Region    *string
	AvatarURL *string
	Bio       *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	Profile *ProfileOutput
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies partial updates to a user profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load profile for update: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeNameRequired,
				"name is required",
				domainerror.ErrNameRequired,
			)
		}
		user.Name = name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Region != nil {
		user.Region = *input.Region
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{Profile: toProfileOutput(user)}, nil
}
