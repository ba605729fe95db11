package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avelichko/mini-erp-cafe/internal/models"
)

// NewPostgresDB opens the primary database from a DSN.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// NewSQLiteDB opens an SQLite database, in-memory when path is empty.
// Used by repository tests.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedInitialData creates the default cashier account so orders can be
// taken on a fresh install. No-op when users already exist.
func SeedInitialData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if count == 0 {
		cashier := models.User{Username: "cashier"}
		if err := db.Create(&cashier).Error; err != nil {
			return fmt.Errorf("failed to seed default user: %w", err)
		}
	}

	return nil
}
