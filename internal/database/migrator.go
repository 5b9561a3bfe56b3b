package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// The service never changes the schema on its own. The embedded schema
// is applied by the seed tool and by integration tests only.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the categories/users/reviews/comments tables using jackc/tern.
//
// Behavior:
//   - Connect using pgx (single connection, not a pool)
//   - Create tern migrator and load embedded migrations
//   - Run migrations to latest
//   - Log whether it was already up-to-date or migrated
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
