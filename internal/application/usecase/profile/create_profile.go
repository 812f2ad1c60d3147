// Package profile contains user profile use cases.
package profile

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

// ProfileOutput represents a user profile returned by use cases.
type ProfileOutput struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Region    string
	AvatarURL string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toProfileOutput converts a User entity to a ProfileOutput.
func toProfileOutput(u *entity.User) *ProfileOutput {
	return &ProfileOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Region:    u.Region,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateProfileInput represents the input for profile creation.
type CreateProfileInput struct {
	Name      string
	Email     string
	Region    string
	AvatarURL string
	Bio       string
}

// CreateProfileOutput represents the output of profile creation.
type CreateProfileOutput struct {
	Profile *ProfileOutput
}

// CreateProfileUseCase handles profile creation.
type CreateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateProfileUseCase creates a new CreateProfileUseCase instance.
func NewCreateProfileUseCase(userRepo adapter.UserRepository) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute validates and persists a new user profile.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeNameRequired,
			"name is required",
			domainerror.ErrNameRequired,
		)
	}

	user := entity.NewUser(name, input.Email, input.Region, input.AvatarURL, input.Bio)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &CreateProfileOutput{Profile: toProfileOutput(user)}, nil
}
