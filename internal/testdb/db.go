// Package testdb provides an in-memory database for service and API tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/backend/internal/models"
)

// New opens a fresh in-memory SQLite database with the schema migrated.
// Each call returns an isolated database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// An in-memory database exists per connection; pin the pool to one so
	// every query sees the migrated schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.SavedRecipe{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
