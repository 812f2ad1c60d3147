// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fishmate/backend/internal/application/usecase/profile"
)

// CreateProfileRequest represents the request body for profile creation.
type CreateProfileRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	Region    string `json:"region,omitempty" binding:"omitempty,max=100"`
	AvatarURL string `json:"avatar_url,omitempty" binding:"omitempty,max=500"`
	Bio       string `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Region    *string `json:"region,omitempty" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,max=500"`
	Bio       *string `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

// ProfileResponse represents a user profile in API responses.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Region    string    `json:"region,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProfileResponse converts a ProfileOutput to a ProfileResponse DTO.
func ToProfileResponse(p *profile.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		Region:    p.Region,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
