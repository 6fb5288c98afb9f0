package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"loyaltyapi/internal/config"
	"loyaltyapi/internal/http/middleware"
	"loyaltyapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a JSON error response. detail must be safe to show to callers.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(errorPayload{
		Detail:    detail,
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError maps service sentinels to status codes and configured messages.
// Anything unrecognized is logged and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, msgs config.MessagesConfig, err error) error {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		return writeError(c, fiber.StatusBadRequest, msgs.MissingParams)
	case errors.Is(err, service.ErrInvalidDocumentType):
		return writeError(c, fiber.StatusBadRequest, msgs.InvalidDocumentType)
	case errors.Is(err, service.ErrClientNotFound):
		return writeError(c, fiber.StatusNotFound, msgs.ClientNotFound)
	case errors.Is(err, service.ErrNoPurchasesInWindow):
		return writeError(c, fiber.StatusNotFound, msgs.NoPurchases)
	case errors.Is(err, service.ErrNoQualifyingClients):
		return writeError(c, fiber.StatusNotFound, msgs.NoQualifyingClients)
	default:
		zerolog.Ctx(c.UserContext()).Error().Err(err).
			Str("event", "request_failed").
			Str("path", c.Path()).
			Msg("unhandled service error")
		return writeError(c, fiber.StatusInternalServerError, msgs.Internal)
	}
}

// ErrorHandler returns a Fiber global error handler for errors that escape the handlers
// (unknown routes, wrong methods, panics recovered by the recover middleware).
func ErrorHandler(msgs config.MessagesConfig) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("event", "request_failed").Msg("unhandled error")
			return writeError(c, status, msgs.Internal)
		}
	}
}
