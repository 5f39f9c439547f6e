package service

import (
	"context"
	"fmt"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Catalog serves the unauthenticated listings.
type Catalog struct {
	userStore model.UserStore
	postStore model.PostStore
	logger    *logger.Logger
}

func NewCatalog(userStore model.UserStore, postStore model.PostStore, logger *logger.Logger) *Catalog {
	return &Catalog{
		userStore: userStore,
		postStore: postStore,
		logger:    logger,
	}
}

func (s *Catalog) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		s.logger.Error("Catalog service: failed to list posts", "error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListUsers returns every user projected through ToPublic, so credential
// material never leaves the service layer.
func (s *Catalog) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("Catalog service: failed to list users", "error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	public := make([]model.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.ToPublic())
	}

	return public, nil
}
