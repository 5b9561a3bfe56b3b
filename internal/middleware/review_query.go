package middleware

import (
	"github.com/deppfellow/game-reviews/internal/validation"
	"github.com/labstack/echo/v4"
)

// ValidateReviewQuery gates sort_by / order on the review listing.
//
// A failing request is answered by the error handler and never reaches
// the handler or the database.
func ValidateReviewQuery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := validation.ValidateReviewQuery(c.QueryParam("sort_by"), c.QueryParam("order")); err != nil {
				return err
			}
			return next(c)
		}
	}
}
