package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TracingMiddleware owns the New Relic echo middleware.
//
// There are two layers:
//  1. NewRelicMiddleware starts a transaction per request
//  2. EnhanceTracing decorates that transaction with request attributes
//
// nrApp is nil when New Relic is disabled; both layers then pass through.
type TracingMiddleware struct {
	nrApp *newrelic.Application
}

func NewTracingMiddleware(nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{nrApp: nrApp}
}

// NewRelicMiddleware starts a transaction per request and stores it in the
// request context, which is what makes newrelic.FromContext work in the
// handlers and in nrpgx5's query segments.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds request attributes to the running transaction:
//   - client ip and user agent
//   - request.id, to jump from a trace to the matching log lines
//   - http.status_code once the handler has returned
//
// Returned errors are noticed through nrpkgerrors so the pkg/errors stack
// recorded by the repositories shows up in the error trace. The error is
// still returned; rendering it is the global error handler's job.
//
// Must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			// User agents are high-cardinality; fine as attributes, not as facets.
			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// The error handler has not written the response yet when err is
			// set, so take the status it is about to send.
			txn.AddAttribute("http.status_code", responseStatus(c, err))

			return err
		}
	}
}
