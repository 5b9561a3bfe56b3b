package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/game-reviews/internal/config"
	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/deppfellow/game-reviews/internal/handler"
	"github.com/deppfellow/game-reviews/internal/middleware"
	"github.com/deppfellow/game-reviews/internal/model"
	"github.com/deppfellow/game-reviews/internal/repository"
	"github.com/deppfellow/game-reviews/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testStores struct {
	categories *mockCategoryStore
	reviews    *mockReviewStore
	comments   *mockCommentStore
	users      *mockUserStore
}

func setup(t *testing.T) (*echo.Echo, *testStores) {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	stores := &testStores{
		categories: &mockCategoryStore{},
		reviews:    &mockReviewStore{},
		comments:   &mockCommentStore{},
		users:      &mockUserStore{},
	}

	h := handler.NewHandlers(s, handler.Stores{
		Categories: stores.categories,
		Reviews:    stores.reviews,
		Comments:   stores.comments,
		Users:      stores.users,
	})

	t.Cleanup(func() {
		stores.categories.AssertExpectations(t)
		stores.reviews.AssertExpectations(t)
		stores.comments.AssertExpectations(t)
		stores.users.AssertExpectations(t)
	})

	return NewRouter(s, h), stores
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func assertMsg(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()

	assert.Equal(t, status, rec.Code)
	assert.Equal(t, map[string]any{"msg": msg}, decode(t, rec))
}

func strPtr(s string) *string { return &s }

var created = time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC)

func TestUnknownRoute(t *testing.T) {
	e, _ := setup(t)

	assertMsg(t, do(e, http.MethodGet, "/api/not-a-route", ""), http.StatusNotFound, "Route not found")
	assertMsg(t, do(e, http.MethodPut, "/api/reviews/1", `{}`), http.StatusNotFound, "Route not found")
}

func TestRequestIDHeader(t *testing.T) {
	e, stores := setup(t)
	stores.users.On("ListUsers", mock.Anything).Return([]model.User{}, nil)

	rec := do(e, http.MethodGet, "/api/users", "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestListEndpoints(t *testing.T) {
	e, _ := setup(t)

	rec := do(e, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, rec.Code)

	endpoints, ok := decode(t, rec)["endpoints"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"GET /api/categories",
		"GET /api/reviews",
		"GET /api/reviews/:review_id",
		"PATCH /api/reviews/:review_id",
		"GET /api/reviews/:review_id/comments",
		"POST /api/reviews/:review_id/comments",
		"DELETE /api/comments/:comment_id",
		"GET /api/users",
	} {
		assert.Contains(t, endpoints, key)
	}
}

func TestHealth(t *testing.T) {
	e, _ := setup(t)

	rec := do(e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])
}

func TestListCategories(t *testing.T) {
	e, stores := setup(t)
	stores.categories.On("ListCategories", mock.Anything).Return([]model.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
	}, nil)

	rec := do(e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	categories := decode(t, rec)["categories"].([]any)
	assert.Len(t, categories, 2)
	assert.Equal(t, "euro game", categories[0].(map[string]any)["slug"])
}

func TestListReviews(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("ListReviews", mock.Anything, repository.ListReviewsParams{
			Category: "social deduction",
			SortBy:   "votes",
			Order:    "ASC",
		}).Return([]model.ReviewSummary{
			{ReviewID: 3, Category: "social deduction", CreatedAt: created, CommentCount: 3},
		}, nil)

		rec := do(e, http.MethodGet, "/api/reviews?category=social%20deduction&sort_by=votes&order=ASC", "")
		require.Equal(t, http.StatusOK, rec.Code)

		reviews := decode(t, rec)["reviews"].([]any)
		require.Len(t, reviews, 1)
		assert.Equal(t, "3", reviews[0].(map[string]any)["comment_count"])
	})

	t.Run("empty listing is an empty array", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("ListReviews", mock.Anything, repository.ListReviewsParams{}).
			Return([]model.ReviewSummary{}, nil)

		rec := do(e, http.MethodGet, "/api/reviews", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{}, decode(t, rec)["reviews"])
	})

	t.Run("unknown column never reaches the store", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodGet, "/api/reviews?sort_by=title", ""), http.StatusBadRequest, "column doesn't exist")
		stores.reviews.AssertNotCalled(t, "ListReviews", mock.Anything, mock.Anything)
	})

	t.Run("bad order", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodGet, "/api/reviews?order=sideways", ""), http.StatusBadRequest, "cannot order by sideways")
		stores.reviews.AssertNotCalled(t, "ListReviews", mock.Anything, mock.Anything)
	})

	t.Run("category without reviews", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("ListReviews", mock.Anything, repository.ListReviewsParams{Category: "bananas"}).
			Return(nil, errs.New(errs.KindNoMatch))

		assertMsg(t, do(e, http.MethodGet, "/api/reviews?category=bananas", ""),
			http.StatusNotFound, "no review associated with this category")
	})

	t.Run("unexpected store failure", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("ListReviews", mock.Anything, mock.Anything).
			Return(nil, errs.NewInternalServerError(errors.New("connection refused")))

		assertMsg(t, do(e, http.MethodGet, "/api/reviews", ""), http.StatusInternalServerError, "internal server error")
	})
}

func TestGetReview(t *testing.T) {
	t.Run("with comment count", func(t *testing.T) {
		e, stores := setup(t)
		count := int64(3)
		stores.reviews.On("GetReview", mock.Anything, int32(2), true).Return(&model.Review{
			ReviewID:     2,
			Title:        "Jenga",
			Designer:     strPtr("Leslie Scott"),
			Owner:        "philippaclaire9",
			ReviewBody:   "Fiddly fun for all the family",
			Category:     "dexterity",
			CreatedAt:    created,
			Votes:        5,
			CommentCount: &count,
		}, nil)

		rec := do(e, http.MethodGet, "/api/reviews/2?comment_count=true", "")
		require.Equal(t, http.StatusOK, rec.Code)

		review := decode(t, rec)["review"].(map[string]any)
		assert.Equal(t, float64(2), review["review_id"])
		assert.Equal(t, "3", review["comment_count"])
		assert.Equal(t, "2021-01-18T10:01:41Z", review["created_at"])
	})

	t.Run("flag must be the literal true", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("GetReview", mock.Anything, int32(2), false).Return(&model.Review{ReviewID: 2}, nil)

		rec := do(e, http.MethodGet, "/api/reviews/2?comment_count=yes", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, decode(t, rec)["review"], "comment_count")
	})

	t.Run("non numeric id", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodGet, "/api/reviews/banana", ""), http.StatusBadRequest, "invalid data type")
		stores.reviews.AssertNotCalled(t, "GetReview", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing review", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("GetReview", mock.Anything, int32(999), false).
			Return(nil, errs.NewNotFoundError("review not found"))

		assertMsg(t, do(e, http.MethodGet, "/api/reviews/999", ""), http.StatusNotFound, "review not found")
	})
}

func TestUpdateReviewVotes(t *testing.T) {
	t.Run("increments and ignores unknown fields", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("UpdateReviewVotes", mock.Anything, int32(2), int32(-3)).
			Return(&model.Review{ReviewID: 2, Votes: 2}, nil)

		rec := do(e, http.MethodPatch, "/api/reviews/2", `{"inc_votes": -3, "title": "ignored"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decode(t, rec)["review"].(map[string]any)["votes"])
	})

	t.Run("missing inc_votes", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodPatch, "/api/reviews/2", `{"votes": 3}`), http.StatusBadRequest, "data missing from request body")
		stores.reviews.AssertNotCalled(t, "UpdateReviewVotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong type", func(t *testing.T) {
		e, _ := setup(t)

		assertMsg(t, do(e, http.MethodPatch, "/api/reviews/2", `{"inc_votes": "three"}`), http.StatusBadRequest, "invalid data type")
	})

	t.Run("missing review", func(t *testing.T) {
		e, stores := setup(t)
		stores.reviews.On("UpdateReviewVotes", mock.Anything, int32(999), int32(1)).
			Return(nil, errs.NewNotFoundError("review not found"))

		assertMsg(t, do(e, http.MethodPatch, "/api/reviews/999", `{"inc_votes": 1}`), http.StatusNotFound, "review not found")
	})
}

func TestComments(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("ListComments", mock.Anything, int32(2)).Return([]model.Comment{
			{CommentID: 5, ReviewID: 2, Author: "mallionaire", Body: "Now this is a story", CreatedAt: created},
		}, nil)

		rec := do(e, http.MethodGet, "/api/reviews/2/comments", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["comments"], 1)
	})

	t.Run("list without comments", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("ListComments", mock.Anything, int32(1)).
			Return(nil, errs.NewNotFoundError("no comments found for this id"))

		assertMsg(t, do(e, http.MethodGet, "/api/reviews/1/comments", ""), http.StatusNotFound, "no comments found for this id")
	})

	t.Run("post", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("CreateComment", mock.Anything, int32(2), "mallionaire", "Great game!").
			Return(&model.Comment{CommentID: 7, ReviewID: 2, Author: "mallionaire", Body: "Great game!", CreatedAt: created}, nil)

		rec := do(e, http.MethodPost, "/api/reviews/2/comments", `{"username": "mallionaire", "body": "Great game!"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		comment := decode(t, rec)["comment"].(map[string]any)
		assert.Equal(t, float64(7), comment["comment_id"])
		assert.Equal(t, "mallionaire", comment["author"])
	})

	t.Run("post empty body", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodPost, "/api/reviews/2/comments", `{"username": "mallionaire", "body": ""}`),
			http.StatusBadRequest, "body can't be empty")
		stores.comments.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("post unknown user", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("CreateComment", mock.Anything, int32(2), "nobody", "hi").
			Return(nil, errs.Wrap(errs.KindInvalidReference, errors.New("fk violation")))

		assertMsg(t, do(e, http.MethodPost, "/api/reviews/2/comments", `{"username": "nobody", "body": "hi"}`),
			http.StatusBadRequest, "invalid identifier")
	})

	t.Run("delete", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("DeleteComment", mock.Anything, int32(1)).Return(&model.Comment{CommentID: 1}, nil)

		rec := do(e, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("delete missing", func(t *testing.T) {
		e, stores := setup(t)
		stores.comments.On("DeleteComment", mock.Anything, int32(999)).
			Return(nil, errs.NewNotFoundError("comment not found"))

		assertMsg(t, do(e, http.MethodDelete, "/api/comments/999", ""), http.StatusNotFound, "comment not found")
	})

	t.Run("delete non numeric", func(t *testing.T) {
		e, stores := setup(t)

		assertMsg(t, do(e, http.MethodDelete, "/api/comments/abc", ""), http.StatusBadRequest, "invalid data type")
		stores.comments.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})
}

func TestListUsers(t *testing.T) {
	e, stores := setup(t)
	stores.users.On("ListUsers", mock.Anything).Return([]model.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: strPtr("https://example.com/lime.jpg")},
	}, nil)

	rec := do(e, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	users := decode(t, rec)["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, map[string]any{
		"username":   "mallionaire",
		"name":       "haz",
		"avatar_url": "https://example.com/lime.jpg",
	}, users[0])
}
