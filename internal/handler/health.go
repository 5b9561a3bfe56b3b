package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/game-reviews/internal/middleware"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes a "system" endpoint that load balancers and uptime
// monitors can use to verify the service is alive and the database reachable.
type HealthHandler struct {
	Handler
	db Pinger
}

// NewHealthHandler constructs a HealthHandler pinging the server's pool.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
	}
	if s.DB != nil {
		h.db = s.DB.Pool
	}
	return h
}

// CheckHealth returns system health status and dependency checks.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - timestamp (UTC)
//   - environment (from config)
//   - checks map (database)
//
// It returns 200 if all checks pass and 503 if any check fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if cfg.Enabled && h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
		defer cancel()

		dbStart := time.Now()

		if err := h.db.Ping(ctx); err != nil {
			isHealthy = false
			checks["database"] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":       "database",
					"operation":        "health_check",
					"error_type":       "database_unhealthy",
					"response_time_ms": time.Since(dbStart).Milliseconds(),
					"error_message":    err.Error(),
				})
			}
		} else {
			checks["database"] = map[string]any{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
