package migration

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"riocaja-smart-backend/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		return fmt.Errorf("error migrating receipt table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
