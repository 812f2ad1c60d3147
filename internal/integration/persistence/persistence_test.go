// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fishmate/backend/internal/domain/entity"
	"github.com/fishmate/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.CatchModel{}, &model.PostModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedCatchAt inserts a catch with an explicit creation time.
func seedCatchAt(t *testing.T, db *gorm.DB, userID uuid.UUID, species string, quantity int, weightKg, totalPrice decimal.Decimal, createdAt time.Time) *entity.Catch {
	t.Helper()

	c := &entity.Catch{
		ID:         uuid.New(),
		UserID:     userID,
		Species:    species,
		Quantity:   quantity,
		WeightKg:   weightKg,
		TotalPrice: totalPrice,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	if err := db.Create(model.CatchFromEntity(c)).Error; err != nil {
		t.Fatalf("failed to seed catch: %v", err)
	}

	return c
}
