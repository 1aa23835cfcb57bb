package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"riocaja-smart-backend/internal/utils"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfig("CORS_ALLOW_ORIGINS"),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: true})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New()
}
