package router

import (
	"github.com/abacqu/people-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// People resource: liveness, health and docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Person.Hello)

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", handler.StaticFS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
