// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/persistence/model"
)

// postRepository implements the adapter.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance.
func NewPostRepository(db *gorm.DB) adapter.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create creates a new post in the database.
func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := model.PostFromEntity(post)
	result := r.db.WithContext(ctx).Create(postModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a post by its ID.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postModel model.PostModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPostNotFound
		}
		return nil, result.Error
	}
	return postModel.ToEntity(), nil
}

// FindByFilter retrieves posts based on filter criteria with pagination.
func (r *postRepository) FindByFilter(ctx context.Context, filter adapter.PostFilter, pagination adapter.PostPagination) (*entity.PostListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.PostModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var postModels []model.PostModel
	result := query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&postModels)
	if result.Error != nil {
		return nil, result.Error
	}

	posts := make([]*entity.Post, len(postModels))
	for i, pm := range postModels {
		posts[i] = pm.ToEntity()
	}

	return &entity.PostListResult{
		Posts:      posts,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// IncrementLikes atomically increments the like count and returns the new count.
func (r *postRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerror.ErrPostNotFound
	}

	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Select("likes").Where("id = ?", id).First(&postModel).Error; err != nil {
		return 0, err
	}
	return postModel.Likes, nil
}

// Delete soft-deletes a post.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPostNotFound
	}
	return nil
}
