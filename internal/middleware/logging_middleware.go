package middleware

import (
	"time"

	"pharma-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger logs basic request/response details and tags each request
// with a short request id, exposed in Locals("request_id") and the response header.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := uuid.New().String()[:8]
		c.Locals("request_id", requestID)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			// Let the app error handler write the response so the status is final.
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := logger.Log.Info()
		if status >= fiber.StatusInternalServerError {
			event = logger.Log.Error()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("HTTP Request")

		return nil
	}
}
