// Package handler is the first layer. The first entry point
// for request logic after the router.
//
// It binds and validates requests using the validation package,
// calls exactly one store operation, and wraps the result in
// a named JSON field. Failures are returned as-is: the global
// error handler owns their translation.
package handler

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/repository"
	"github.com/deppfellow/game-reviews/internal/server"
)

// Store interfaces the handlers depend on. The repository package
// provides the Postgres implementations.

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type ReviewStore interface {
	ListReviews(ctx context.Context, params repository.ListReviewsParams) ([]model.ReviewSummary, error)
	GetReview(ctx context.Context, id int32, withCommentCount bool) (*model.Review, error)
	UpdateReviewVotes(ctx context.Context, id int32, delta int32) (*model.Review, error)
}

type CommentStore interface {
	ListComments(ctx context.Context, reviewID int32) ([]model.Comment, error)
	CreateComment(ctx context.Context, reviewID int32, author, body string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int32) (*model.Comment, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Stores bundles one implementation per store interface.
type Stores struct {
	Categories CategoryStore
	Reviews    ReviewStore
	Comments   CommentStore
	Users      UserStore
}

// StoresFrom exposes the Postgres repositories as handler stores.
func StoresFrom(repos *repository.Repositories) Stores {
	return Stores{
		Categories: repos.Categories,
		Reviews:    repos.Reviews,
		Comments:   repos.Comments,
		Users:      repos.Users,
	}
}

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	API      *APIHandler
	Category *CategoryHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	User     *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, stores Stores) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		API:      NewAPIHandler(s),
		Category: NewCategoryHandler(s, stores.Categories),
		Review:   NewReviewHandler(s, stores.Reviews),
		Comment:  NewCommentHandler(s, stores.Comments),
		User:     NewUserHandler(s, stores.Users),
	}
}
