// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/game-reviews/internal/handler"
	"github.com/deppfellow/game-reviews/internal/middleware"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with every middleware and route.
//
// Middleware order matters:
//   - RequestID before the tracing and context middlewares that read it
//   - NewRelicMiddleware before anything calling newrelic.FromContext
//   - ContextEnhancer before RequestLogger, which logs with its logger
//   - Recover innermost, so panics still go through logging
//
// Unmatched routes fall through to Echo's 404/405, which the global
// error handler answers with "Route not found".
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

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
	registerAPIRoutes(router.Group("/api"), h)

	return router
}
