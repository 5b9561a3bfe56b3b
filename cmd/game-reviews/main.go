// Command game-reviews runs the board game reviews HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/deppfellow/game-reviews/internal/handler"
	"github.com/deppfellow/game-reviews/internal/logger"
	"github.com/deppfellow/game-reviews/internal/repository"
	"github.com/deppfellow/game-reviews/internal/router"
	"github.com/deppfellow/game-reviews/internal/server"
)

// DefaultContextTimeout bounds the graceful shutdown, in seconds.
const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// New Relic first, so the logger can forward to it.
	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	handlers := handler.NewHandlers(srv, handler.StoresFrom(repos))
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}
