package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	"github.com/BruksfildServices01/appointment-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsLocal() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate creates the schema, including the partial unique index that
// keeps one active appointment per provider and hour.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.File{},
		&models.User{},
		&models.Appointment{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if err := repository.EnsureActiveSlotIndex(db); err != nil {
		return fmt.Errorf("failed to create %s: %w", repository.ActiveSlotIndex, err)
	}
	return nil
}
