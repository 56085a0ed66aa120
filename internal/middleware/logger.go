package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogger tags every request with a generated id and logs the
// outcome with latency once the handler chain returns.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.New().String()
		c.Set("requestId", requestID)

		start := time.Now()
		err := next(c)
		latency := time.Since(start)

		event := log.Info()
		if err != nil {
			event = log.Error().Err(err)
		}
		event.
			Str("requestId", requestID).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("latency", latency).
			Msg("request completed")

		return err
	}
}
