package routes

import (
	"github.com/gofiber/fiber/v2"

	"riocaja-smart-backend/internal/api/handlers"
	"riocaja-smart-backend/internal/middleware"
)

type Config struct {
	App            *fiber.App
	APIPrefix      string
	ReceiptHandler handlers.ReceiptHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Receipts()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Receipts() {
	receipts := c.App.Group(c.APIPrefix + "/receipts")
	{
		receipts.Get("", c.ReceiptHandler.GetReceipts)
		receipts.Post("", c.ReceiptHandler.CreateReceipt)
		receipts.Get("/date/*", c.ReceiptHandler.GetReceiptsByDate)
		receipts.Get("/report/*", c.ReceiptHandler.GetClosingReport)
		receipts.Delete("/:transaction_number", c.ReceiptHandler.DeleteReceipt)
	}
}
