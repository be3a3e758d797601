package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id and a request-scoped logger
// reachable through zerolog.Ctx(c.UserContext()).
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals("requestId", id)

		logger := log.With().Str("request_id", id).Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		return c.Next()
	}
}
