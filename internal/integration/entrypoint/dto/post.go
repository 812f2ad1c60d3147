// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fishmate/backend/internal/application/usecase/community"
)

// CreatePostRequest represents the request body for post creation.
type CreatePostRequest struct {
	UserID    string   `json:"user_id" binding:"required,uuid"`
	Content   string   `json:"content" binding:"required,min=1,max=2000"`
	ImageURLs []string `json:"image_urls,omitempty" binding:"omitempty,max=10,dive,max=500"`
}

// PostResponse represents a community post in API responses.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"image_urls"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostListResponse represents a paginated list of posts.
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// LikePostResponse represents the result of liking a post.
type LikePostResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

// ToPostResponse converts a PostOutput to a PostResponse DTO.
func ToPostResponse(p *community.PostOutput) PostResponse {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return PostResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Content:   p.Content,
		ImageURLs: imageURLs,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
