// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/persistence/model"
)

// catchRepository implements the adapter.CatchRepository interface.
type catchRepository struct {
	db *gorm.DB
}

// NewCatchRepository creates a new catch repository instance.
func NewCatchRepository(db *gorm.DB) adapter.CatchRepository {
	return &catchRepository{
		db: db,
	}
}

// Create creates a new catch record in the database.
func (r *catchRepository) Create(ctx context.Context, c *entity.Catch) error {
	catchModel := model.CatchFromEntity(c)
	result := r.db.WithContext(ctx).Create(catchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a catch by its ID.
func (r *catchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Catch, error) {
	var catchModel model.CatchModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&catchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCatchNotFound
		}
		return nil, result.Error
	}
	return catchModel.ToEntity(), nil
}

// FindByFilter retrieves catches based on filter criteria with pagination.
func (r *catchRepository) FindByFilter(ctx context.Context, filter adapter.CatchFilter, pagination adapter.CatchPagination) (*entity.CatchListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.CatchModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Species != "" {
		query = query.Where("LOWER(species) = ?", strings.ToLower(filter.Species))
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", filter.EndDate)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var catchModels []model.CatchModel
	result := query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&catchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	catches := make([]*entity.Catch, len(catchModels))
	for i, cm := range catchModels {
		catches[i] = cm.ToEntity()
	}

	return &entity.CatchListResult{
		Catches:    catches,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// Update updates an existing catch record.
func (r *catchRepository) Update(ctx context.Context, c *entity.Catch) error {
	catchModel := model.CatchFromEntity(c)
	result := r.db.WithContext(ctx).
		Model(&model.CatchModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"species":     catchModel.Species,
			"quantity":    catchModel.Quantity,
			"weight_kg":   catchModel.WeightKg,
			"total_price": catchModel.TotalPrice,
			"latitude":    catchModel.Latitude,
			"longitude":   catchModel.Longitude,
			"updated_at":  catchModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCatchNotFound
	}
	return nil
}

// Delete soft-deletes a catch record.
func (r *catchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CatchModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCatchNotFound
	}
	return nil
}
