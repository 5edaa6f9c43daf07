package middleware

import (
	"github.com/deppfellow/bakery-api/internal/logger"
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey stores the request-scoped logger in echo context.
const LoggerKey = "logger"

// ContextEnhancer derives a request-scoped logger from the server logger.
//
// Fields added to every line logged during the request:
//   - request_id (from RequestID)
//   - method and path, where path is the route template ("/bakeries/:id"),
//     not the raw URL, so lines group by endpoint
//   - ip
//   - trace.id and span.id when a New Relic transaction is running
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext builds the request logger and publishes it twice:
//
//  1. in echo context under LoggerKey, for middleware and handlers (GetLogger)
//  2. in the request's context.Context, for services that only receive a ctx
//     (zerolog.Ctx)
//
// It has to run after RequestID and NewRelicMiddleware, otherwise the
// corresponding fields are empty.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// zerolog's own context key, so zerolog.Ctx finds it downstream.
			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger.
//
// When EnhanceContext did not run (unit tests, routes mounted outside the
// chain) it returns a disabled logger rather than nil, so callers never
// have to check.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
