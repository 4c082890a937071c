package logging

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDHeader     = "X-Request-ID"
	CorrelationIDHeader = "X-Correlation-ID"
)

// Middleware tags every request with request and correlation ids, stores
// them in the user context and writes one access log line per request.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = GenerateRequestID()
		}
		correlationID := c.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = GenerateCorrelationID()
		}

		ctx := ContextWithRequestID(c.UserContext(), requestID)
		ctx = ContextWithCorrelationID(ctx, correlationID)
		c.SetUserContext(ctx)
		c.Set(RequestIDHeader, requestID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		evt := Ctx(ctx).Info()
		if status >= fiber.StatusInternalServerError {
			evt = Ctx(ctx).Error().Err(err)
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
