package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the correlation id in both directions.
	// Proxies in front of the service may already have set it.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is where the id lives in echo context.
	RequestIDKey = "request_id"
)

// RequestID makes sure every request has a correlation id.
//
// Behavior:
//   - an incoming X-Request-ID is reused as is
//   - otherwise a random UUID is generated
//   - the id is stored in echo context for later middleware (logger, tracing)
//   - the id is written back on the response so clients can quote it
//
// It must run first so every log line and New Relic attribute sees the id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)

			// Set before next runs; headers are frozen once the body is written.
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request id, or "" if RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
