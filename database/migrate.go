package database

import (
	"ruandri_backend/internal/logger"
	"ruandri_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs schema migration for all models.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Booking{},
	)
	if err != nil {
		return err
	}

	logger.Info("AutoMigrate completed")
	return nil
}
