// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/fishmate/backend/internal/domain/entity"
)

// PostModel represents the posts table in the database.
type PostModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content   string         `gorm:"type:text;not null"`
	ImageURLs pq.StringArray `gorm:"type:text[]"`
	Likes     int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the PostModel.
func (PostModel) TableName() string {
	return "posts"
}

// ToEntity converts a PostModel to a domain Post entity.
func (m *PostModel) ToEntity() *entity.Post {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		ImageURLs: []string(m.ImageURLs),
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// PostFromEntity creates a PostModel from a domain Post entity.
func PostFromEntity(p *entity.Post) *PostModel {
	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	}

	return &PostModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		ImageURLs: pq.StringArray(p.ImageURLs),
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
