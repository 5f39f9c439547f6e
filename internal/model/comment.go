package model

import "context"

// CommentStore defines read operations for comments. Comments are created
// outside this service and are read-only here.
type CommentStore interface {
	ListByUserID(ctx context.Context, userID string) ([]Comment, error)
}

// Comment represents a stored comment owned by a user.
type Comment struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
}
