package file

import (
	"context"
	"fmt"

	"github.com/dtroode/postboard-server/internal/model"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
)

const postsCollection = "posts"

var _ model.PostStore = (*PostRepository)(nil)

// PostRepository reads posts from the "posts" collection.
type PostRepository struct {
	store *storage.Store
}

func NewPostRepository(store *storage.Store) *PostRepository {
	return &PostRepository{
		store: store,
	}
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	posts, err := storage.Load[model.Post](r.store, postsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	return posts, nil
}
