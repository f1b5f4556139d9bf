package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/staffboard/attestation-dashboard/pkg/logger"
)

// Locals key for the request-scoped logger.
const LocalLogger = "logger"

// RequestLogger attaches a sublogger carrying the request method and path to
// c.Locals and writes one line per handled request with status and duration.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := logger.From(log.With().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger())
		c.Locals(LocalLogger, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
		return err
	}
}

// GetLogger returns the request-scoped logger placed by RequestLogger, nil
// when the middleware is not mounted.
func GetLogger(c *fiber.Ctx) *logger.Logger {
	l, _ := c.Locals(LocalLogger).(*logger.Logger)
	return l
}
