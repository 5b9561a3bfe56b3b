package repository

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListCategories returns every category. An empty table is an empty list.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description FROM categories`)
	if err != nil {
		return nil, storeError(err, "failed to query categories")
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, storeError(err, "failed to collect categories")
	}

	return categories, nil
}
