package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/validation"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// Caller input never reaches ORDER BY directly: the validated token is
// looked up here and only the looked-up string is interpolated.
var (
	reviewSortExpressions = map[string]string{
		"created_at":    "reviews.created_at",
		"votes":         "reviews.votes",
		"comment_count": "comment_count",
	}

	sortDirections = map[string]string{
		"asc":  "ASC",
		"desc": "DESC",
	}
)

const (
	reviewColumns = `reviews.review_id, reviews.title, reviews.designer, reviews.owner,
		reviews.review_img_url, reviews.review_body, reviews.category,
		reviews.created_at, reviews.votes`

	// Correlated count of the comments on each review row.
	commentCountColumn = `(SELECT COUNT(comments.comment_id) FROM comments
		WHERE comments.review_id = reviews.review_id) AS comment_count`
)

// ListReviewsParams are the listing filters. SortBy and Order must
// already have passed validation.ValidateReviewQuery; empty means default.
type ListReviewsParams struct {
	Category string
	SortBy   string
	Order    string
}

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// buildListReviewsQuery assembles the listing statement and its arguments.
//
// A token missing from the lookup tables is rejected even though the
// validator should have caught it already.
func buildListReviewsQuery(params ListReviewsParams) (string, []any, error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = validation.DefaultSortBy
	}
	sortExpr, ok := reviewSortExpressions[sortBy]
	if !ok {
		return "", nil, errs.New(errs.KindUnknownColumn)
	}

	order := params.Order
	if order == "" {
		order = validation.DefaultOrder
	}
	direction, ok := sortDirections[validation.FoldOrder(order)]
	if !ok {
		return "", nil, errs.NewInvalidSortDirectionError(params.Order)
	}

	var (
		query strings.Builder
		args  []any
	)

	query.WriteString(`SELECT reviews.owner, reviews.title, reviews.review_id, reviews.category,
		reviews.review_img_url, reviews.created_at, reviews.votes, reviews.designer, `)
	query.WriteString(commentCountColumn)
	query.WriteString(` FROM reviews`)

	if params.Category != "" {
		args = append(args, params.Category)
		fmt.Fprintf(&query, ` WHERE reviews.category = $%d`, len(args))
	}

	// review_id keeps rows with equal sort keys in a stable order.
	fmt.Fprintf(&query, ` ORDER BY %s %s, reviews.review_id ASC`, sortExpr, direction)

	return query.String(), args, nil
}

// ListReviews returns the review listing with a comment_count per row.
//
// A category filter that matches nothing fails with errs.KindNoMatch.
// An unfiltered empty table is an empty list.
func (r *ReviewRepository) ListReviews(ctx context.Context, params ListReviewsParams) ([]model.ReviewSummary, error) {
	query, args, err := buildListReviewsQuery(params)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query reviews")
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReviewSummary])
	if err != nil {
		return nil, storeError(err, "failed to collect reviews")
	}

	if len(reviews) == 0 && params.Category != "" {
		return nil, errs.New(errs.KindNoMatch)
	}

	return reviews, nil
}

// GetReview fetches one review. comment_count is only selected when
// withCommentCount is set.
func (r *ReviewRepository) GetReview(ctx context.Context, id int32, withCommentCount bool) (*model.Review, error) {
	query := `SELECT ` + reviewColumns
	if withCommentCount {
		query += `, ` + commentCountColumn
	}
	query += ` FROM reviews WHERE reviews.review_id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, storeError(err, "failed to query review")
	}

	review, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[model.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("review not found")
		}
		return nil, storeError(err, "failed to collect review")
	}

	return review, nil
}

// UpdateReviewVotes adds delta to the review's votes and returns the updated row.
// Votes are only ever changed relatively, never set.
func (r *ReviewRepository) UpdateReviewVotes(ctx context.Context, id int32, delta int32) (*model.Review, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE reviews
		SET votes = votes + $1
		WHERE review_id = $2
		RETURNING `+reviewColumns, delta, id)
	if err != nil {
		return nil, storeError(err, "failed to update review votes")
	}

	review, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[model.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("review not found")
		}
		return nil, storeError(err, "failed to collect updated review")
	}

	return review, nil
}
