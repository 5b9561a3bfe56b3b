package validation

import (
	"unicode/utf8"

	"github.com/deppfellow/game-reviews/internal/errs"
	"golang.org/x/text/cases"
)

// Defaults used by the review listing when sort_by / order are absent.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

// ReviewSortColumns is the allow-list for sort_by.
//
// sort_by ends up inside ORDER BY, where identifiers cannot be bound as
// parameters, so nothing outside this set may get past the validator.
var ReviewSortColumns = []string{"created_at", "votes", "comment_count"}

// IsReviewSortColumn reports whether column is in ReviewSortColumns.
func IsReviewSortColumn(column string) bool {
	for _, allowed := range ReviewSortColumns {
		if column == allowed {
			return true
		}
	}
	return false
}

// FoldOrder case-folds an order value, so "DESC" and "Desc" both become "desc".
//
// Only ASCII input is folded. Anything else is returned unchanged, so a
// value like "deſc" never turns into a valid direction.
// A cases.Caser keeps state, so a new one is built per call.
func FoldOrder(order string) string {
	for i := 0; i < len(order); i++ {
		if order[i] >= utf8.RuneSelf {
			return order
		}
	}
	return cases.Fold().String(order)
}

// ValidateReviewQuery gates the sort parameters of GET /api/reviews.
//
// Empty values count as absent and fall back to the defaults.
// It never rewrites its input:
//
//	sort_by not in ReviewSortColumns   -> errs.KindUnknownColumn
//	order not asc/desc (any case)      -> errs.KindInvalidSortDirection carrying the literal
func ValidateReviewQuery(sortBy, order string) error {
	if sortBy != "" && !IsReviewSortColumn(sortBy) {
		return errs.New(errs.KindUnknownColumn)
	}

	if order != "" {
		switch FoldOrder(order) {
		case "asc", "desc":
		default:
			return errs.NewInvalidSortDirectionError(order)
		}
	}

	return nil
}
