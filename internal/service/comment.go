package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Comment resolves a verified identity to a user and returns that user's
// comments.
type Comment struct {
	userStore    model.UserStore
	commentStore model.CommentStore
	logger       *logger.Logger
}

func NewComment(userStore model.UserStore, commentStore model.CommentStore, logger *logger.Logger) *Comment {
	return &Comment{
		userStore:    userStore,
		commentStore: commentStore,
		logger:       logger,
	}
}

// ListForUser returns the comments owned by the user the email claim
// resolves to, in stored order. A claim whose user no longer exists yields
// model.ErrNotFound.
func (s *Comment) ListForUser(ctx context.Context, email string) ([]model.Comment, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Comment service: user for claim no longer exists", "email", email)
			return nil, model.ErrNotFound
		}
		s.logger.Error("Comment service: failed to resolve user",
			"email", email,
			"error", err.Error())
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	comments, err := s.commentStore.ListByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Comment service: failed to list comments",
			"user_id", user.ID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
