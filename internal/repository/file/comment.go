package file

import (
	"context"
	"fmt"

	"github.com/dtroode/postboard-server/internal/model"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
)

const commentsCollection = "comments"

var _ model.CommentStore = (*CommentRepository)(nil)

// CommentRepository reads comments from the "comments" collection.
type CommentRepository struct {
	store *storage.Store
}

func NewCommentRepository(store *storage.Store) *CommentRepository {
	return &CommentRepository{
		store: store,
	}
}

// ListByUserID returns the user's comments in stored order.
func (r *CommentRepository) ListByUserID(ctx context.Context, userID string) ([]model.Comment, error) {
	comments, err := storage.Load[model.Comment](r.store, commentsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	filtered := make([]model.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.UserID == userID {
			filtered = append(filtered, comment)
		}
	}

	return filtered, nil
}
