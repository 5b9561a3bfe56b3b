package handler

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
)

// endpoints.json is the machine-readable description of the HTTP surface.
// It is compiled into the binary, so no static folder is needed at runtime.
//
//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsResponse is the body of GET /api.
type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// APIHandler serves the endpoint catalogue.
type APIHandler struct {
	Handler
}

func NewAPIHandler(s *server.Server) *APIHandler {
	return &APIHandler{
		Handler: NewHandler(s),
	}
}

// ListEndpoints handles GET /api.
func (h *APIHandler) ListEndpoints(c echo.Context) error {
	return Handle[model.EmptyRequest](
		h.Handler,
		func(c echo.Context, _ *model.EmptyRequest) (*EndpointsResponse, error) {
			return &EndpointsResponse{Endpoints: endpointsJSON}, nil
		},
		http.StatusOK,
	)(c)
}
