package database

import (
	"gorm.io/gorm"

	"github.com/forkful/backend/internal/models"
)

// Migrate brings the schema up to date for all domain models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.SavedRecipe{},
	)
}
