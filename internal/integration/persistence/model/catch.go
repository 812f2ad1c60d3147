// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fishmate/backend/internal/domain/entity"
)

// CatchModel represents the catches table in the database.
type CatchModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Species    string          `gorm:"type:varchar(100);not null;index"`
	Quantity   int             `gorm:"not null"`
	WeightKg   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Latitude   *float64        `gorm:"type:double precision"`
	Longitude  *float64        `gorm:"type:double precision"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CatchModel.
func (CatchModel) TableName() string {
	return "catches"
}

// ToEntity converts a CatchModel to a domain Catch entity.
func (m *CatchModel) ToEntity() *entity.Catch {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Catch{
		ID:         m.ID,
		UserID:     m.UserID,
		Species:    m.Species,
		Quantity:   m.Quantity,
		WeightKg:   m.WeightKg,
		TotalPrice: m.TotalPrice,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CatchFromEntity creates a CatchModel from a domain Catch entity.
func CatchFromEntity(c *entity.Catch) *CatchModel {
	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	}

	return &CatchModel{
		ID:         c.ID,
		UserID:     c.UserID,
		Species:    c.Species,
		Quantity:   c.Quantity,
		WeightKg:   c.WeightKg,
		TotalPrice: c.TotalPrice,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
