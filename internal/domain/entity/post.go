// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a community post shared by an angler.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	ImageURLs []string // Already-uploaded image URLs, upload itself happens elsewhere
	Likes     int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewPost creates a new community Post.
func NewPost(userID uuid.UUID, content string, imageURLs []string) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		ImageURLs: imageURLs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PostListResult represents the result of listing posts.
type PostListResult struct {
	Posts      []*Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
