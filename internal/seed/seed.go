// Package seed loads a known data set into the database.
//
// It is used by cmd/seed for local development and by the integration
// tests, which reseed before every test so each starts from the same rows.
package seed

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// Data is one complete data set. Reviews get their ids from the SERIAL
// in slice order (1, 2, ...), and Comments reference those ids.
type Data struct {
	Categories []model.Category
	Users      []model.User
	Reviews    []model.Review
	Comments   []model.Comment
}

// Beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run replaces every row with data, in a single transaction.
//
// Identities are restarted, so review and comment ids are predictable.
func Run(ctx context.Context, db Beginner, data Data) error {
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`); err != nil {
			return errors.Wrap(err, "failed to truncate tables")
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"categories"},
			[]string{"slug", "description"},
			pgx.CopyFromSlice(len(data.Categories), func(i int) ([]any, error) {
				c := data.Categories[i]
				return []any{c.Slug, c.Description}, nil
			}),
		); err != nil {
			return errors.Wrap(err, "failed to seed categories")
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"users"},
			[]string{"username", "name", "avatar_url"},
			pgx.CopyFromSlice(len(data.Users), func(i int) ([]any, error) {
				u := data.Users[i]
				return []any{u.Username, u.Name, u.AvatarURL}, nil
			}),
		); err != nil {
			return errors.Wrap(err, "failed to seed users")
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"reviews"},
			[]string{"title", "designer", "owner", "review_img_url", "review_body", "category", "created_at", "votes"},
			pgx.CopyFromSlice(len(data.Reviews), func(i int) ([]any, error) {
				r := data.Reviews[i]
				return []any{r.Title, r.Designer, r.Owner, r.ReviewImgURL, r.ReviewBody, r.Category, r.CreatedAt, r.Votes}, nil
			}),
		); err != nil {
			return errors.Wrap(err, "failed to seed reviews")
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"comments"},
			[]string{"body", "review_id", "author", "votes", "created_at"},
			pgx.CopyFromSlice(len(data.Comments), func(i int) ([]any, error) {
				c := data.Comments[i]
				return []any{c.Body, c.ReviewID, c.Author, c.Votes, c.CreatedAt}, nil
			}),
		); err != nil {
			return errors.Wrap(err, "failed to seed comments")
		}

		return nil
	})
}
