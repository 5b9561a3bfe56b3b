package repository

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const commentColumns = `comment_id, review_id, author, body, votes, created_at`

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListComments returns the comments of a review, newest first.
//
// Zero rows fails with NotFound whether or not the review exists.
func (r *CommentRepository) ListComments(ctx context.Context, reviewID int32) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC, comment_id ASC`, reviewID)
	if err != nil {
		return nil, storeError(err, "failed to query comments")
	}

	comments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Comment])
	if err != nil {
		return nil, storeError(err, "failed to collect comments")
	}

	if len(comments) == 0 {
		return nil, errs.NewNotFoundError("no comments found for this id")
	}

	return comments, nil
}

// CreateComment inserts a comment. An unknown review or author is
// rejected by the foreign keys and surfaces as errs.KindInvalidReference.
func (r *CommentRepository) CreateComment(ctx context.Context, reviewID int32, author, body string) (*model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO comments (review_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns, reviewID, author, body)
	if err != nil {
		return nil, storeError(err, "failed to insert comment")
	}

	comment, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Comment])
	if err != nil {
		return nil, storeError(err, "failed to collect inserted comment")
	}

	return comment, nil
}

// DeleteComment hard-deletes a comment and returns the deleted row.
func (r *CommentRepository) DeleteComment(ctx context.Context, id int32) (*model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		DELETE FROM comments
		WHERE comment_id = $1
		RETURNING `+commentColumns, id)
	if err != nil {
		return nil, storeError(err, "failed to delete comment")
	}

	comment, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("comment not found")
		}
		return nil, storeError(err, "failed to collect deleted comment")
	}

	return comment, nil
}
