package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/model"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
)

func TestCommentRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, storage.Save(s, commentsCollection, []model.Comment{
		{ID: "c1", UserID: "u1", Text: "hi"},
		{ID: "c2", UserID: "u2", Text: "other"},
		{ID: "c3", UserID: "u1", Text: "again"},
	}))

	repo := NewCommentRepository(s)

	comments, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []model.Comment{
		{ID: "c1", UserID: "u1", Text: "hi"},
		{ID: "c3", UserID: "u1", Text: "again"},
	}, comments)
}

func TestCommentRepository_ListByUserID_Empty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, storage.Save(s, commentsCollection, []model.Comment{
		{ID: "c1", UserID: "u1", Text: "hi"},
	}))

	repo := NewCommentRepository(s)

	comments, err := repo.ListByUserID(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, comments)
}

func TestCommentRepository_MissingCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	repo := NewCommentRepository(s)

	_, err := repo.ListByUserID(ctx, "u1")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestPostRepository_List(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, storage.Save(s, postsCollection, []model.Post{
		{ID: "p1", Title: "first"},
		{ID: "p2", Title: "second", Body: "text"},
	}))

	repo := NewPostRepository(s)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "p1", posts[0].ID)
}
