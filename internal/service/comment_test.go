package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/logger"
	servermocks "github.com/dtroode/postboard-server/internal/mocks"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/service"
)

func TestComment_ListForUser_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	commentStore := &servermocks.CommentStore{}
	log := logger.New(0)

	user := model.User{ID: "u1", Email: "a@b.c"}
	comments := []model.Comment{
		{ID: "c1", UserID: "u1", Text: "first"},
		{ID: "c2", UserID: "u1", Text: "second"},
	}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)
	commentStore.On("ListByUserID", mock.Anything, "u1").Return(comments, nil)

	s := service.NewComment(userStore, commentStore, log)

	got, err := s.ListForUser(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, comments, got)
}

func TestComment_ListForUser_UserGone(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	commentStore := &servermocks.CommentStore{}

	userStore.On("GetByEmail", mock.Anything, "gone@b.c").Return(model.User{}, model.ErrNotFound)

	s := service.NewComment(userStore, commentStore, logger.New(0))

	_, err := s.ListForUser(ctx, "gone@b.c")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestComment_ListForUser_StoreError(t *testing.T) {
	ctx := context.Background()
	userStore := &servermocks.UserStore{}
	commentStore := &servermocks.CommentStore{}

	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: "u1", Email: "a@b.c"}, nil)
	commentStore.On("ListByUserID", mock.Anything, "u1").Return(nil, assert.AnError)

	s := service.NewComment(userStore, commentStore, logger.New(0))

	_, err := s.ListForUser(ctx, "a@b.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list comments")
}
