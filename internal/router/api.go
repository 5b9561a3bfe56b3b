package router

import (
	"github.com/deppfellow/game-reviews/internal/handler"
	"github.com/deppfellow/game-reviews/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the /api surface.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("", h.API.ListEndpoints)

	api.GET("/categories", h.Category.ListCategories)

	api.GET("/reviews", h.Review.ListReviews, middleware.ValidateReviewQuery())
	api.GET("/reviews/:id", h.Review.GetReview)
	api.PATCH("/reviews/:id", h.Review.UpdateReviewVotes)

	api.GET("/reviews/:id/comments", h.Comment.ListComments)
	api.POST("/reviews/:id/comments", h.Comment.PostComment)

	api.DELETE("/comments/:id", h.Comment.DeleteComment)

	api.GET("/users", h.User.ListUsers)
}
