package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/game-reviews/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReviewQuery(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		order   string
		kind    errs.Kind
		message string
	}{
		{name: "defaults", sortBy: "", order: ""},
		{name: "votes asc", sortBy: "votes", order: "asc"},
		{name: "comment count", sortBy: "comment_count", order: "desc"},
		{name: "upper case order", sortBy: "created_at", order: "DESC"},
		{name: "mixed case order", order: "AsC"},
		{name: "unknown column", sortBy: "title", kind: errs.KindUnknownColumn, message: "column doesn't exist"},
		{name: "injection attempt", sortBy: "votes; DROP TABLE reviews", kind: errs.KindUnknownColumn, message: "column doesn't exist"},
		{name: "column case matters", sortBy: "VOTES", kind: errs.KindUnknownColumn, message: "column doesn't exist"},
		{name: "bad order", order: "sideways", kind: errs.KindInvalidSortDirection, message: "cannot order by sideways"},
		{name: "bad order keeps literal", order: "UpWards", kind: errs.KindInvalidSortDirection, message: "cannot order by UpWards"},
		{name: "long s is not asc", order: "aſc", kind: errs.KindInvalidSortDirection, message: "cannot order by aſc"},
		{name: "long s is not desc", order: "deſc", kind: errs.KindInvalidSortDirection, message: "cannot order by deſc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewQuery(tt.sortBy, tt.order)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.kind, errs.KindOf(err))
			assert.Equal(t, tt.message, errs.Translate(err).Message)
		})
	}
}

func TestFoldOrder(t *testing.T) {
	assert.Equal(t, "desc", FoldOrder("DESC"))
	assert.Equal(t, "asc", FoldOrder("aSc"))
	assert.Equal(t, "deſc", FoldOrder("deſc"))
}

type voteRequest struct {
	ID       int32  `param:"id" json:"-"`
	IncVotes *int32 `json:"inc_votes" validate:"required"`
}

func (r *voteRequest) Validate() error {
	return Check(r, FieldKinds{"IncVotes": errs.KindMissingField})
}

type commentRequest struct {
	Body     string `json:"body" validate:"required"`
	Username string `json:"username" validate:"required"`
}

func (r *commentRequest) Validate() error {
	return Check(r, FieldKinds{"Body": errs.KindEmptyBody})
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("binds path and body", func(t *testing.T) {
		c := newContext(http.MethodPatch, `{"inc_votes": 3, "extra": true}`)
		c.SetParamNames("id")
		c.SetParamValues("2")

		req := &voteRequest{}
		require.NoError(t, BindAndValidate(c, req))
		assert.Equal(t, int32(2), req.ID)
		require.NotNil(t, req.IncVotes)
		assert.Equal(t, int32(3), *req.IncVotes)
	})

	t.Run("missing field", func(t *testing.T) {
		c := newContext(http.MethodPatch, `{}`)
		err := BindAndValidate(c, &voteRequest{})
		assert.Equal(t, errs.KindMissingField, errs.KindOf(err))
	})

	t.Run("zero delta is present", func(t *testing.T) {
		c := newContext(http.MethodPatch, `{"inc_votes": 0}`)
		assert.NoError(t, BindAndValidate(c, &voteRequest{}))
	})

	t.Run("non numeric id", func(t *testing.T) {
		c := newContext(http.MethodPatch, `{"inc_votes": 1}`)
		c.SetParamNames("id")
		c.SetParamValues("banana")

		err := BindAndValidate(c, &voteRequest{})
		assert.Equal(t, errs.KindInvalidType, errs.KindOf(err))
	})

	t.Run("wrong json type", func(t *testing.T) {
		c := newContext(http.MethodPatch, `{"inc_votes": "three"}`)
		err := BindAndValidate(c, &voteRequest{})
		assert.Equal(t, errs.KindInvalidType, errs.KindOf(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newContext(http.MethodPost, `{"body":`)
		err := BindAndValidate(c, &commentRequest{})
		assert.Equal(t, errs.KindInvalidType, errs.KindOf(err))
	})

	t.Run("empty body string", func(t *testing.T) {
		c := newContext(http.MethodPost, `{"username": "mallionaire", "body": ""}`)
		err := BindAndValidate(c, &commentRequest{})
		assert.Equal(t, errs.KindEmptyBody, errs.KindOf(err))
		assert.Equal(t, "body can't be empty", errs.Translate(err).Message)
	})

	t.Run("missing username", func(t *testing.T) {
		c := newContext(http.MethodPost, `{"body": "great game"}`)
		err := BindAndValidate(c, &commentRequest{})
		assert.Equal(t, errs.KindMissingField, errs.KindOf(err))
	})
}

func TestCheckRejectsNonStruct(t *testing.T) {
	err := Check(42, nil)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}
