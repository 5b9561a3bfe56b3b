package handler

import (
	"net/http"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/repository"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews ReviewStore
}

func NewReviewHandler(s *server.Server, reviews ReviewStore) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// ListReviews handles GET /api/reviews?category=&sort_by=&order=.
//
// The router also runs middleware.ValidateReviewQuery in front of it.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	return Handle[model.ListReviewsRequest](
		h.Handler,
		func(c echo.Context, req *model.ListReviewsRequest) (*model.ReviewsResponse, error) {
			reviews, err := h.reviews.ListReviews(c.Request().Context(), repository.ListReviewsParams{
				Category: req.Category,
				SortBy:   req.SortBy,
				Order:    req.Order,
			})
			if err != nil {
				return nil, err
			}
			return &model.ReviewsResponse{Reviews: reviews}, nil
		},
		http.StatusOK,
	)(c)
}

// GetReview handles GET /api/reviews/:id?comment_count=true.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	return Handle[model.GetReviewRequest](
		h.Handler,
		func(c echo.Context, req *model.GetReviewRequest) (*model.ReviewResponse, error) {
			review, err := h.reviews.GetReview(c.Request().Context(), req.ID, req.WithCommentCount())
			if err != nil {
				return nil, err
			}
			return &model.ReviewResponse{Review: review}, nil
		},
		http.StatusOK,
	)(c)
}

// UpdateReviewVotes handles PATCH /api/reviews/:id with {"inc_votes": n}.
func (h *ReviewHandler) UpdateReviewVotes(c echo.Context) error {
	return Handle[model.UpdateReviewVotesRequest](
		h.Handler,
		func(c echo.Context, req *model.UpdateReviewVotesRequest) (*model.ReviewResponse, error) {
			review, err := h.reviews.UpdateReviewVotes(c.Request().Context(), req.ID, *req.IncVotes)
			if err != nil {
				return nil, err
			}
			return &model.ReviewResponse{Review: review}, nil
		},
		http.StatusOK,
	)(c)
}
