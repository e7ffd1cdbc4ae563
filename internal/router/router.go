// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the routes, mapping paths to
// their handlers.
package router

import (
	"github.com/abacqu/people-api/internal/handler"
	"github.com/abacqu/people-api/internal/middleware"
	"github.com/abacqu/people-api/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route.
//
// Order matters: the request ID exists before tracing and the context
// logger read it; the New Relic transaction exists before EnhanceTracing
// and the context logger look it up; the request logger reads the context
// logger; Recover sits innermost so a panic still produces a logged
// response.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// "/people/" routes like "/people".
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerPeopleRoutes(router, h)

	return router
}
