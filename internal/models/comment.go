package models

import (
	"time"
)

// Comment represents a comment on a post as persisted
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	PostID    int64     `json:"post_id" db:"post_id"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentWithAuthor is the API shape of a comment, author username joined in
type CommentWithAuthor struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the payload for POST /comments
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

// UpdateCommentRequest is the payload for PUT /comments/:id.
// An absent content field leaves the existing content untouched.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
