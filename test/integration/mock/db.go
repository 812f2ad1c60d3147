// Package mock provides in-process doubles for external dependencies used by
// the integration suite.
package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fishmate/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory SQLite database with the full application
// schema. Each scenario gets its own database so state never leaks between
// scenarios.
func NewDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CatchModel{},
		&model.PostModel{},
	); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return db
}
