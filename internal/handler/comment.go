package handler

import (
	"net/http"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Handler
	comments CommentStore
}

func NewCommentHandler(s *server.Server, comments CommentStore) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

// ListComments handles GET /api/reviews/:id/comments.
func (h *CommentHandler) ListComments(c echo.Context) error {
	return Handle[model.ReviewIDRequest](
		h.Handler,
		func(c echo.Context, req *model.ReviewIDRequest) (*model.CommentsResponse, error) {
			comments, err := h.comments.ListComments(c.Request().Context(), req.ID)
			if err != nil {
				return nil, err
			}
			return &model.CommentsResponse{Comments: comments}, nil
		},
		http.StatusOK,
	)(c)
}

// PostComment handles POST /api/reviews/:id/comments with {"username", "body"}.
//
// An empty body is rejected during validation, before the store is called.
func (h *CommentHandler) PostComment(c echo.Context) error {
	return Handle[model.PostCommentRequest](
		h.Handler,
		func(c echo.Context, req *model.PostCommentRequest) (*model.CommentResponse, error) {
			comment, err := h.comments.CreateComment(c.Request().Context(), req.ReviewID, req.Username, req.Body)
			if err != nil {
				return nil, err
			}
			return &model.CommentResponse{Comment: comment}, nil
		},
		http.StatusCreated,
	)(c)
}

// DeleteComment handles DELETE /api/comments/:id and answers 204.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	return HandleNoContent[model.CommentIDRequest](
		h.Handler,
		func(c echo.Context, req *model.CommentIDRequest) error {
			_, err := h.comments.DeleteComment(c.Request().Context(), req.ID)
			return err
		},
		http.StatusNoContent,
	)(c)
}
