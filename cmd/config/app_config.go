package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"riocaja-smart-backend/internal/api/handlers"
	"riocaja-smart-backend/internal/api/routes"
	"riocaja-smart-backend/internal/middleware"
	"riocaja-smart-backend/internal/utils"
	"riocaja-smart-backend/pkg/receipt"
)

// NewApp wires the receipt stack on top of db. The returned closer releases
// the access log file.
func NewApp(db *gorm.DB) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	SetupLogging()

	app := fiber.New(fiber.Config{
		AppName:           "RioCaja Smart",
		EnablePrintRoutes: utils.GetConfig("LOG_LEVEL") == "debug",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file: %w", err)
	}
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Guayaquil",
		Output:     io.MultiWriter(os.Stdout, file),
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetIntConfig("RATE_LIMIT_MAX", 20),
		Expiration: 1 * time.Second,
	}))

	// Repository
	receiptRepository := receipt.NewReceiptRepository(db, utils.GetDurationConfig("DB_TIMEOUT", 5*time.Second))

	// Service
	receiptService := receipt.NewReceiptService(receiptRepository)

	// Handler
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		APIPrefix:      utils.GetConfig("API_PREFIX"),
		ReceiptHandler: receiptHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, file, nil
}

func SetupLogging() {
	switch utils.GetConfig("LOG_LEVEL") {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}
