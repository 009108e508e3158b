package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's X-Request-ID or mints one, echoes it
// back and stores it in the request's user context for FromCtx.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set(RequestIDHeader, reqID)
		c.Locals("request_id", reqID)
		c.SetUserContext(WithRequestID(c.UserContext(), reqID))

		return c.Next()
	}
}
