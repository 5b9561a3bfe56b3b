package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestDataShape(t *testing.T) {
	data := TestData()

	assert.Len(t, data.Categories, 4)
	assert.Len(t, data.Users, 4)
	assert.Len(t, data.Reviews, 13)

	socialDeduction := 0
	for _, review := range data.Reviews {
		if review.Category == "social deduction" {
			socialDeduction++
		}
	}
	assert.Equal(t, 11, socialDeduction)

	perReview := map[int32]int{}
	for _, comment := range data.Comments {
		perReview[comment.ReviewID]++
	}
	assert.Equal(t, 3, perReview[2])
	assert.Zero(t, perReview[1])
}

func TestTestDataReferencesExist(t *testing.T) {
	data := TestData()

	users := map[string]bool{}
	for _, user := range data.Users {
		users[user.Username] = true
	}
	categories := map[string]bool{}
	for _, category := range data.Categories {
		categories[category.Slug] = true
	}

	for _, review := range data.Reviews {
		assert.True(t, users[review.Owner], review.Title)
		assert.True(t, categories[review.Category], review.Title)
	}
	for _, comment := range data.Comments {
		assert.True(t, users[comment.Author], comment.Body)
		assert.LessOrEqual(t, int(comment.ReviewID), len(data.Reviews))
	}
}
