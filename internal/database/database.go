// Package database contains the logic for establishing
// connections to the PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool) with the configured limits
//   - wiring query tracing/logging (pgx tracelog, slow query warnings)
//   - optional New Relic instrumentation (nrpgx5)
//
// The pool is created once at startup, passed explicitly to the
// repositories and closed once at shutdown.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/deppfellow/game-reviews/internal/config"
	loggerConfig "github.com/deppfellow/game-reviews/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database "unreachable".
const DatabasePingTimeout = 10

// DSN returns the connection string for cfg.
//
// database.url wins when set. Otherwise the URL is assembled from the
// discrete fields, with the password URL-escaped.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// New creates a PostgreSQL connection pool with instrumentation.
//
// Behavior:
//   - Parse DSN into pgxpool config and apply pool limits
//   - Attach New Relic tracer if available
//   - Attach the slow query tracer
//   - In local env: attach SQL tracelogger as well
//   - Create pool, ping it, and return Database
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(&cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	var tracers []any

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{
			threshold: cfg.Observability.Logging.SlowQueryThreshold,
			log:       logger,
		})
	}

	// Very noisy, which is why it's only in local.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	switch len(tracers) {
	case 0:
	case 1:
		pgxPoolConfig.ConnConfig.Tracer = tracers[0].(pgx.QueryTracer)
	default:
		pgxPoolConfig.ConnConfig.Tracer = &multiTracer{tracers: tracers}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	// Startup fails fast if the DB is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Int32("max_conns", pgxPoolConfig.MaxConns).
		Msg("connected to the database")

	return database, nil
}

// Close closes the database connection pool.
//
// Returns nil currently because pgxpool.Close doesn't return error.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
