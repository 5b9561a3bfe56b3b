package middleware

import (
	"net/http"

	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/deppfellow/game-reviews/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
//
// It keeps a pointer to *server.Server so the middleware can read
// config values (CORS origins, env) and the base logger.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo's request logger middleware with a zerolog LogValuesFunc.
//
// It produces one "API" log line per request, with severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, the response has not been
			// written yet: GlobalErrorHandler runs later. Resolve the status
			// the same way it will, so the log line doesn't say 200.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = resolve(v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware.
// A panic becomes an error and ends up as a 500 in GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// Classify turns any error that reaches the HTTP layer into a tagged failure.
//
//   - *errs.Error: unchanged
//   - Echo 404 / 405 (no route for method + path): errs.KindRouteNotFound
//   - Echo 400 / 415 (binding): errs.KindInvalidType
//   - other Echo errors: unchanged, they keep their own status
//   - anything else: sqlerr.HandleError (driver errors, or 500)
func Classify(err error) error {
	var tagged *errs.Error
	if errors.As(err, &tagged) {
		return err
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return errs.Wrap(errs.KindRouteNotFound, err)
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return errs.Wrap(errs.KindInvalidType, err)
		}
		return err
	}

	return sqlerr.HandleError(err)
}

// resolve classifies err and returns the response it produces.
func resolve(err error) *errs.HTTPError {
	err = Classify(err)

	var tagged *errs.Error
	var echoErr *echo.HTTPError
	if !errors.As(err, &tagged) && errors.As(err, &echoErr) {
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: http.StatusText(echoErr.Code),
			Status:  echoErr.Code,
		}
	}

	return errs.Translate(err)
}

// IsServerError reports whether err will be answered with a 5xx.
// Only those are reported to New Relic as errors.
func IsServerError(err error) bool {
	return resolve(err).Status >= http.StatusInternalServerError
}

// GlobalErrorHandler is the single place where failures become responses.
//
// Every error returned by a handler or middleware ends up here. The body
// is always {"msg": "..."}. Unrecognized failures are logged with their
// full cause and answered with a generic 500.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := resolve(err)

	logger := GetLogger(c)

	if httpErr.Status >= http.StatusInternalServerError {
		logger.Error().Stack().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	} else {
		logger.Debug().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, httpErr)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}
