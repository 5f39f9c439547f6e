package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/mocks"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/testutil"
)

func TestCatalog_ListPosts(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		{ID: "p1", Title: "hello", Body: "world"},
	}

	svc := mocks.NewCatalogService(t)
	svc.On("ListPosts", mock.Anything).Return(posts, nil)

	h := NewCatalog(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, posts, got)
}

func TestCatalog_ListPosts_Error(t *testing.T) {
	t.Parallel()

	svc := mocks.NewCatalogService(t)
	svc.On("ListPosts", mock.Anything).Return(nil, assert.AnError)

	h := NewCatalog(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCatalog_ListUsers(t *testing.T) {
	t.Parallel()

	users := []model.PublicUser{
		{ID: "u1", Email: "a@b.c", Name: "Alice"},
		{ID: "u2", Email: "b@b.c", Name: "Bob"},
	}

	svc := mocks.NewCatalogService(t)
	svc.On("ListUsers", mock.Anything).Return(users, nil)

	h := NewCatalog(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var got []model.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, users, got)
}

func TestCatalog_ListUsers_EmptyIsJSONArray(t *testing.T) {
	t.Parallel()

	svc := mocks.NewCatalogService(t)
	svc.On("ListUsers", mock.Anything).Return(nil, nil)

	h := NewCatalog(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
