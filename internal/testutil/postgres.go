//go:build integration

// Package testutil starts a throwaway Postgres for integration tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/deppfellow/game-reviews/internal/database"
	"github.com/deppfellow/game-reviews/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupDB starts a postgres:alpine container, creates the schema and
// returns a pool on it. The container is removed when the test ends.
func SetupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("game_reviews_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := zerolog.Nop()
	require.NoError(t, database.Migrate(ctx, &logger, &config.DatabaseConfig{URL: connStr}))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// Reseed replaces every row with seed.TestData.
func Reseed(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	require.NoError(t, seed.Run(context.Background(), pool, seed.TestData()))
}
