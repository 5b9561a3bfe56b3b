package handler

import (
	"time"

	"github.com/deppfellow/game-reviews/internal/middleware"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/deppfellow/game-reviews/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (ReviewHandler, HealthHandler, ...)
// so they can reach config, logger and the DB pool via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that:
//
//   - receives a bound and validated request payload (Req)
//   - returns a response (Res) or an error
//
// Req is a POINTER type, e.g. *model.PostCommentRequest, because Echo's
// Bind needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint function for routes that return no response body.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// Payload constrains PReq to "pointer to Req that validates itself", so the
// pipeline can allocate a fresh Req for every request.
type Payload[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler defines how a successful result is written and which
// operation name it logs under.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// NoContentResponseHandler writes responses with no body (typically 204).
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, _ any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//   - request binding + validation
//   - structured logging (with request context)
//   - New Relic attributes and error reporting
//   - timing (validation, handler, total)
//   - response writing
//
// Errors are returned untouched: the global error handler translates them.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	// The transaction is started by nrecho (TracingMiddleware).
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			if middleware.IsServerError(err) {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, logging and tracing.
//
// A new Req is allocated per request, so concurrent requests never share
// a payload. Req is usually given explicitly and the rest is inferred:
//
//	return Handle[model.PostCommentRequest](h.Handler, h.postComment, http.StatusCreated)(c)
func Handle[Req any, PReq Payload[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, PReq(new(Req)), func(c echo.Context, req PReq) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that answer without a body
// (e.g. DELETE with 204).
func HandleNoContent[Req any, PReq Payload[Req]](
	h Handler,
	handler HandlerFuncNoContent[PReq],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, PReq(new(Req)), func(c echo.Context, req PReq) (any, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}
