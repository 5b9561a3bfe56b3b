// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/deppfellow/game-reviews/internal/database"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/game-reviews/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger(s)
//   - the database pool
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// DB holds the PostgreSQL pool wrapper. It is created once here and
	// handed explicitly to the repositories.
	DB *database.Database

	httpServer *http.Server
}

// New constructs a Server and connects to the database.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
// Config timeouts are in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// It requires SetupHTTPServer to be called first. After Shutdown it
// returns http.ErrServerClosed.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// In-flight requests finish (until ctx expires), then the pool is closed
// and pending New Relic data is flushed.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
