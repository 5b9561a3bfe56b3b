package middleware

import (
	"github.com/deppfellow/game-reviews/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// so router setup builds them once and reuses them everywhere.
type Middlewares struct {
	// Global: CORS, request logging, recovery, secure headers and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware and custom transaction attributes.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured, GetApplication returns nil and the
// tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s.LoggerService.GetApplication()),
	}
}
