package handler

import (
	"net/http"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	categories CategoryStore
}

func NewCategoryHandler(s *server.Server, categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: categories,
	}
}

// ListCategories handles GET /api/categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return Handle[model.EmptyRequest](
		h.Handler,
		func(c echo.Context, _ *model.EmptyRequest) (*model.CategoriesResponse, error) {
			categories, err := h.categories.ListCategories(c.Request().Context())
			if err != nil {
				return nil, err
			}
			return &model.CategoriesResponse{Categories: categories}, nil
		},
		http.StatusOK,
	)(c)
}
