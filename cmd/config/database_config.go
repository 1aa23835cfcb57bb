package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"riocaja-smart-backend/internal/utils"
)

func DSN() string {
	if url := utils.GetConfig("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=America/Guayaquil",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		utils.GetConfig("DB_SSLMODE"),
	)
}

func ConnectDB() (*gorm.DB, error) {
	logLevel := logger.Warn
	if utils.GetConfig("LOG_LEVEL") == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(utils.GetIntConfig("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(utils.GetIntConfig("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
