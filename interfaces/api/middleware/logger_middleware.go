package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"cattle-tracker/pkg/logger"
)

// LoggerMiddleware records one api-category entry per request.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.API("request", c.Method()+" "+c.Path(), map[string]interface{}{
			"status":   c.Response().StatusCode(),
			"ip":       c.IP(),
			"duration": time.Since(start).String(),
		})
		return err
	}
}
