package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommentCountIsStringTyped(t *testing.T) {
	count := int64(3)
	review := Review{
		ReviewID:     2,
		Title:        "Jenga",
		Owner:        "philippaclaire9",
		Category:     "dexterity",
		CreatedAt:    time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC),
		Votes:        5,
		CommentCount: &count,
	}

	raw, err := json.Marshal(review)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "3", decoded["comment_count"])
	assert.Equal(t, "2021-01-18T10:01:41Z", decoded["created_at"])
}

func TestReviewOmitsCommentCountWhenNotRequested(t *testing.T) {
	raw, err := json.Marshal(Review{ReviewID: 1})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "comment_count")
	assert.Contains(t, decoded, "review_body")
}

func TestReviewSummaryShape(t *testing.T) {
	raw, err := json.Marshal(ReviewSummary{ReviewID: 1, CommentCount: 0})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "0", decoded["comment_count"])
	assert.NotContains(t, decoded, "review_body")
}

func TestGetReviewRequestCommentCountFlag(t *testing.T) {
	assert.True(t, (&GetReviewRequest{CommentCount: "true"}).WithCommentCount())
	assert.False(t, (&GetReviewRequest{CommentCount: "TRUE"}).WithCommentCount())
	assert.False(t, (&GetReviewRequest{CommentCount: "1"}).WithCommentCount())
	assert.False(t, (&GetReviewRequest{}).WithCommentCount())
}
