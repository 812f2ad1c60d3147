// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an angler profile in the FishMate system.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Region    string // Home fishing region, free text
	AvatarURL string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser creates a new User profile.
func NewUser(name, email, region, avatarURL, bio string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Region:    region,
		AvatarURL: avatarURL,
		Bio:       bio,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
