package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request correlation id in and out.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the Echo context key holding the id.
	RequestIDKey = "request_id"

	// maxRequestIDLength bounds ids supplied by clients; longer ones are replaced.
	maxRequestIDLength = 128
)

// RequestID returns an Echo middleware that gives each request an id.
//
// An incoming X-Request-ID is reused when present and reasonably short,
// otherwise a UUID is generated. The id is stored in the Echo context
// and echoed on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from Echo context.
// Returns "" if RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
