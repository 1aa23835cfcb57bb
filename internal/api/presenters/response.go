package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    interface{} `json:"data,omitempty"`
		Count   *int        `json:"count,omitempty"`
		Error   string      `json:"error,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListResponse always reports count, zero included, next to the items.
func ListResponse(c *fiber.Ctx, data interface{}, count int, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}
