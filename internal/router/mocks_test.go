package router

import (
	"context"

	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/repository"
	"github.com/stretchr/testify/mock"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

type mockReviewStore struct {
	mock.Mock
}

func (m *mockReviewStore) ListReviews(ctx context.Context, params repository.ListReviewsParams) ([]model.ReviewSummary, error) {
	args := m.Called(ctx, params)
	reviews, _ := args.Get(0).([]model.ReviewSummary)
	return reviews, args.Error(1)
}

func (m *mockReviewStore) GetReview(ctx context.Context, id int32, withCommentCount bool) (*model.Review, error) {
	args := m.Called(ctx, id, withCommentCount)
	review, _ := args.Get(0).(*model.Review)
	return review, args.Error(1)
}

func (m *mockReviewStore) UpdateReviewVotes(ctx context.Context, id int32, delta int32) (*model.Review, error) {
	args := m.Called(ctx, id, delta)
	review, _ := args.Get(0).(*model.Review)
	return review, args.Error(1)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) ListComments(ctx context.Context, reviewID int32) ([]model.Comment, error) {
	args := m.Called(ctx, reviewID)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

func (m *mockCommentStore) CreateComment(ctx context.Context, reviewID int32, author, body string) (*model.Comment, error) {
	args := m.Called(ctx, reviewID, author, body)
	comment, _ := args.Get(0).(*model.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentStore) DeleteComment(ctx context.Context, id int32) (*model.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*model.Comment)
	return comment, args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}
