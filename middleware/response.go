package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Envelope is the response wrapper shared by every endpoint.
type Envelope struct {
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Valid   *bool       `json:"valid,omitempty"`
}

func JsonResponse(c *fiber.Ctx, statusCode int, isError bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(Envelope{
		Error:   isError,
		Message: message,
		Data:    data,
	})
}

// ListResponse writes a successful collection response with its item count.
func ListResponse(c *fiber.Ctx, data interface{}, count int) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Data:  data,
		Count: &count,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, message string, fields map[string]string) error {
	var data interface{}
	if len(fields) > 0 {
		data = fields
	}
	return JsonResponse(c, fiber.StatusBadRequest, true, message, data)
}

// InternalError logs err with the request logger and answers with a generic 500.
func InternalError(c *fiber.Ctx, message string, err error) error {
	zerolog.Ctx(c.UserContext()).Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(message)
	return JsonResponse(c, fiber.StatusInternalServerError, true, message, nil)
}

// ErrorHandler is the fiber.Config ErrorHandler: it keeps unhandled errors
// and recovered panics inside the envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonResponse(c, fiberErr.Code, true, fiberErr.Message, nil)
	}
	return InternalError(c, "Internal server error", err)
}
