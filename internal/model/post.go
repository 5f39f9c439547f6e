package model

import "context"

// PostStore defines read operations for posts.
type PostStore interface {
	List(ctx context.Context) ([]Post, error)
}

// Post represents a stored post. Posts are listed without authentication.
type Post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}
