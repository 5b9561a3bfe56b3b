package model

import (
	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/deppfellow/game-reviews/internal/validation"
)

// Request payloads. Each one is bound by validation.BindAndValidate:
// `param` tags read path segments, `query` tags read the query string on
// GET/DELETE, `json` tags read the body. Identifiers are int32 so an id
// that cannot be a SERIAL fails at binding with "invalid data type".

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// ListReviewsRequest is GET /api/reviews?category=&sort_by=&order=.
type ListReviewsRequest struct {
	Category string `query:"category"`
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
}

func (r *ListReviewsRequest) Validate() error {
	return validation.ValidateReviewQuery(r.SortBy, r.Order)
}

// GetReviewRequest is GET /api/reviews/:id?comment_count=.
type GetReviewRequest struct {
	ID           int32  `param:"id"`
	CommentCount string `query:"comment_count"`
}

func (r *GetReviewRequest) Validate() error {
	return nil
}

// WithCommentCount is true only for the literal "true".
func (r *GetReviewRequest) WithCommentCount() bool {
	return r.CommentCount == "true"
}

// ReviewIDRequest addresses a review by path id.
type ReviewIDRequest struct {
	ID int32 `param:"id"`
}

func (r *ReviewIDRequest) Validate() error {
	return nil
}

// PostCommentRequest is POST /api/reviews/:id/comments.
type PostCommentRequest struct {
	ReviewID int32  `param:"id" json:"-"`
	Body     string `json:"body" validate:"required"`
	Username string `json:"username" validate:"required"`
}

func (r *PostCommentRequest) Validate() error {
	return validation.Check(r, validation.FieldKinds{
		"Body":     errs.KindEmptyBody,
		"Username": errs.KindMissingField,
	})
}

// UpdateReviewVotesRequest is PATCH /api/reviews/:id.
//
// IncVotes is a pointer so that a missing field and 0 are told apart.
// Any other body field is ignored.
type UpdateReviewVotesRequest struct {
	ID       int32  `param:"id" json:"-"`
	IncVotes *int32 `json:"inc_votes" validate:"required"`
}

func (r *UpdateReviewVotesRequest) Validate() error {
	return validation.Check(r, validation.FieldKinds{
		"IncVotes": errs.KindMissingField,
	})
}

// CommentIDRequest is DELETE /api/comments/:id.
type CommentIDRequest struct {
	ID int32 `param:"id"`
}

func (r *CommentIDRequest) Validate() error {
	return nil
}
