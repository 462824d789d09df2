package models

import (
	"time"
)

// Post represents a blog post as persisted
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MaxTitleLen caps post title length
const MaxTitleLen = 100

// PostWithAuthor is the API shape of a post: the author's username is
// resolved with an explicit join, the entity itself only stores the FK.
type PostWithAuthor struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostRequest is the payload for creating or updating a post
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
