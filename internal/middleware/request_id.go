package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID memakai header X-Request-ID dari client bila ada, jika tidak
// membuat UUID baru. Nilainya disimpan di Locals("reqid").
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("reqid", id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
