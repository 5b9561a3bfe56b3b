package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// nrApp is nil when New Relic is disabled, and both middlewares then
// pass requests through untouched.
type TracingMiddleware struct {
	nrApp *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		nrApp: nrApp,
	}
}

// NewRelicMiddleware starts a New Relic transaction per request (nrecho)
// and stores it in the request context, which is what makes
// newrelic.FromContext work later.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds custom attributes to the New Relic transaction.
//
// Added: client ip, user agent, request id, the route template and,
// after the handler ran, the response status and the failure code.
// Client errors (4xx) are not noticed as errors.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("http.route", c.Path())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)

			status := c.Response().Status
			if err != nil {
				httpErr := resolve(err)
				status = httpErr.Status
				txn.AddAttribute("error.code", httpErr.Code)

				if IsServerError(err) {
					txn.NoticeError(nrpkgerrors.Wrap(err))
				}
			}

			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
