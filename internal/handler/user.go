package handler

import (
	"net/http"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users UserStore
}

func NewUserHandler(s *server.Server, users UserStore) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	return Handle[model.EmptyRequest](
		h.Handler,
		func(c echo.Context, _ *model.EmptyRequest) (*model.UsersResponse, error) {
			users, err := h.users.ListUsers(c.Request().Context())
			if err != nil {
				return nil, err
			}
			return &model.UsersResponse{Users: users}, nil
		},
		http.StatusOK,
	)(c)
}
