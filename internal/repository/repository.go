// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data. Every method issues exactly one statement and
// classifies failures before returning them: not-found policies are
// decided here, and driver errors go through sqlerr so callers only
// ever see *errs.Error values.
package repository

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// storeError attaches op and a stack trace to err, then classifies it.
func storeError(err error, op string) error {
	return sqlerr.HandleError(errors.Wrap(err, op))
}
