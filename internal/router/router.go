// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API routes,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/bakery-api/internal/handler"
	"github.com/deppfellow/bakery-api/internal/middleware"
	"github.com/deppfellow/bakery-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain,
// system routes and API routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Metrics.Middleware(),
	)

	registerSystemRoutes(router, h, middlewares.Metrics)
	registerBakeryRoutes(router, h)

	return router
}

// readMethods are the methods every read-only route answers. net/http
// discards the body written for a HEAD request, leaving status and headers.
var readMethods = []string{http.MethodGet, http.MethodHead}

// routeMatcher is satisfied by both *echo.Echo and *echo.Group.
type routeMatcher interface {
	Match(methods []string, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) []*echo.Route
}

// get registers a read-only route for GET and HEAD.
func get(r routeMatcher, path string, h echo.HandlerFunc) {
	r.Match(readMethods, path, h)
}
