package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abok-cymk/ai-democratizer/internal/infrastructure/repositories"
)

// Open creates a new database connection.
func Open(dsn string, verbose bool) (*gorm.DB, error) {
	mode := logger.Warn
	if verbose {
		mode = logger.Info
	}
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(mode),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}
