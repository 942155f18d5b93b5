package handler

import (
	"errors"

	"pharma-dashboard/internal/repository"
	"pharma-dashboard/internal/service"
	"pharma-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps service errors onto the API error taxonomy. Internal
// errors are logged and answered with failMsg only.
func respondError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message, "details": vErr.Details})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	default:
		logger.Log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(failMsg)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": failMsg})
	}
}

func invalidJSON(c *fiber.Ctx, entity string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Invalid " + entity + " data",
		"details": err.Error(),
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

// parseID reads the :id route param. An id that is not a UUID cannot name an
// existing record, so callers answer it like any other unknown id.
func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ErrorHandler is installed as the Fiber error handler; it answers anything
// that escaped a handler, including recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		code = fErr.Code
		msg = fErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logger.Log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")
		msg = "Internal Server Error"
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
