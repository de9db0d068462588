package dto

import "time"

// BlogRequest represents a blog create or update body. Updates are a
// full overwrite: every field is replaced, published defaults to false
// when absent.
type BlogRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

// BlogResponse represents a blog with its owner projection nested
type BlogResponse struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Published bool         `json:"published"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	User      UserResponse `json:"user"`
}

// BlogStatsResponse represents per-user post counts
type BlogStatsResponse struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}
