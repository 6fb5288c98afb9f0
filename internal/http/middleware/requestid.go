package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID ensures every request has a request ID.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header, generating a UUID when missing.
// - Stores the value in Fiber context locals under RequestIDLocalKey.
// - Attaches a child of base carrying request_id to the user context (see zerolog.Ctx).
// - Echoes the value in the X-Request-ID response header.
func RequestID(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)

		reqLog := base.With().Str("request_id", id).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
