package accesslog

import (
	"errors"
	"time"

	"serve-web/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// New returns a middleware writing one entry per request to l.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			// Handled by the error handler after we return; report its code.
			status = fe.Code
		}

		// Fiber strings are only valid inside the handler; log entries may outlive it.
		rl := logger.WithRayID(l, c)
		fields := []zap.Field{
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", utils.CopyString(c.IP())),
		}
		if err != nil && fe == nil {
			rl.Error("Request error", append(fields, zap.Error(err))...)
			return err
		}
		rl.Info("Request", fields...)
		return err
	}
}
