// Command seed creates the schema (if needed) and loads the fixture data set.
//
// It reads the same GAMEREVIEWS_ environment as the API. Every existing
// row is replaced.
package main

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/deppfellow/game-reviews/internal/database"
	"github.com/deppfellow/game-reviews/internal/logger"
	"github.com/deppfellow/game-reviews/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.NewLogger(cfg.Observability)

	if cfg.Primary.Env == "production" {
		log.Fatal().Msg("refusing to seed a production database")
	}

	ctx := context.Background()

	if err := database.Migrate(ctx, &log, &cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	db, err := database.New(cfg, &log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	data := seed.TestData()
	if err := seed.Run(ctx, db.Pool, data); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	log.Info().
		Int("categories", len(data.Categories)).
		Int("users", len(data.Users)).
		Int("reviews", len(data.Reviews)).
		Int("comments", len(data.Comments)).
		Msg("database seeded")
}
