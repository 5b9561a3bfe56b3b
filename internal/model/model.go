// Package model defines the records the API reads and writes.
//
// Struct tags serve two readers: `json` for the HTTP response and
// `db` for pgx's RowToStructByName row mapping.
package model

import "time"

type Category struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// Review is the full review record returned by the single-review endpoints.
//
// CommentCount is only set when the caller asked for it, and is written
// as a JSON string ("3") the way the store aggregates it.
type Review struct {
	ReviewID     int32     `json:"review_id" db:"review_id"`
	Title        string    `json:"title" db:"title"`
	Designer     *string   `json:"designer" db:"designer"`
	Owner        string    `json:"owner" db:"owner"`
	ReviewImgURL *string   `json:"review_img_url" db:"review_img_url"`
	ReviewBody   string    `json:"review_body" db:"review_body"`
	Category     string    `json:"category" db:"category"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int32     `json:"votes" db:"votes"`
	CommentCount *int64    `json:"comment_count,omitempty,string" db:"comment_count"`
}

// ReviewSummary is one row of the review listing. It has no body but
// always carries the comment count.
type ReviewSummary struct {
	Owner        string    `json:"owner" db:"owner"`
	Title        string    `json:"title" db:"title"`
	ReviewID     int32     `json:"review_id" db:"review_id"`
	Category     string    `json:"category" db:"category"`
	ReviewImgURL *string   `json:"review_img_url" db:"review_img_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int32     `json:"votes" db:"votes"`
	Designer     *string   `json:"designer" db:"designer"`
	CommentCount int64     `json:"comment_count,string" db:"comment_count"`
}

type Comment struct {
	CommentID int32     `json:"comment_id" db:"comment_id"`
	ReviewID  int32     `json:"review_id" db:"review_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int32     `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// User is the public profile. Nothing else about a user is exposed.
type User struct {
	Username  string  `json:"username" db:"username"`
	Name      string  `json:"name" db:"name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
}
