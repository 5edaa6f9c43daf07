package router

import (
	"github.com/deppfellow/bakery-api/internal/handler"
	"github.com/deppfellow/bakery-api/internal/middleware"
	"github.com/deppfellow/bakery-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not business logic:
// health, metrics, docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, metrics *middleware.Metrics) {
	get(r, "/status", h.Health.CheckHealth)
	get(r, "/metrics", echo.WrapHandler(metrics.Handler()))

	get(r, "/static*", echo.StaticDirectoryHandler(static.FS, false))
	get(r, "/docs", h.OpenAPI.ServeOpenAPIUI)
}
