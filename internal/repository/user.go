package repository

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// ListUsers returns the public profile of every user.
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users`)
	if err != nil {
		return nil, storeError(err, "failed to query users")
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, storeError(err, "failed to collect users")
	}

	return users, nil
}
