package model

// Every successful response wraps its result in one named field.

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type ReviewsResponse struct {
	Reviews []ReviewSummary `json:"reviews"`
}

type ReviewResponse struct {
	Review *Review `json:"review"`
}

type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type CommentResponse struct {
	Comment *Comment `json:"comment"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}
