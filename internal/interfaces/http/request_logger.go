package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kiranapos/pos-api/pkg/logger"
)

// RequestLogger deja una línea estructurada por petición atendida. Los errores
// ya resueltos por los handlers salen como status; aquí solo se anota el
// resultado y la latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= 500 {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
