package repository

import (
	"github.com/deppfellow/game-reviews/internal/server"
)

// Repositories is a container for all repository instances.
//
// It is built once at startup and handed to the handlers, which only
// see the narrow store interfaces they need.
type Repositories struct {
	Categories *CategoryRepository
	Reviews    *ReviewRepository
	Comments   *CommentRepository
	Users      *UserRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New constructs the repository container on any DBTX.
func New(db DBTX) *Repositories {
	return &Repositories{
		Categories: NewCategoryRepository(db),
		Reviews:    NewReviewRepository(db),
		Comments:   NewCommentRepository(db),
		Users:      NewUserRepository(db),
	}
}
