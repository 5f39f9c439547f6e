package file

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/model"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func seedUsers(t *testing.T, s *storage.Store, users []model.User) {
	t.Helper()
	require.NoError(t, storage.Save(s, usersCollection, users))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, []model.User{
		{ID: "u1", Email: "a@x.com", Password: "h1"},
		{ID: "u2", Email: "b@x.com", Password: "h2"},
	})

	repo := NewUserRepository(s)

	user, err := repo.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	require.Equal(t, "u2", user.ID)
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, []model.User{{ID: "u1", Email: "a@x.com", Password: "h1"}})

	repo := NewUserRepository(s)

	_, err := repo.GetByEmail(ctx, "A@X.COM")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByEmail_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, []model.User{
		{ID: "u1", Email: "dup@x.com"},
		{ID: "u2", Email: "dup@x.com"},
	})

	repo := NewUserRepository(s)

	user, err := repo.GetByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, nil)

	repo := NewUserRepository(s)

	_, err := repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, nil)

	repo := NewUserRepository(s)

	created, err := repo.Create(ctx, model.User{ID: "u1", Email: "a@x.com", Password: "h1"})
	require.NoError(t, err)
	require.Equal(t, "u1", created.ID)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, []model.User{{ID: "u1", Email: "a@x.com"}})

	repo := NewUserRepository(s)

	_, err := repo.Create(ctx, model.User{ID: "u2", Email: "a@x.com"})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestUserRepository_Create_MissingCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	repo := NewUserRepository(s)

	_, err := repo.Create(ctx, model.User{ID: "u1", Email: "a@x.com"})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUsers(t, s, nil)

	repo := NewUserRepository(s)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, model.User{ID: "same", Email: "same@x.com"})
		}(i)
	}
	wg.Wait()

	var created, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, model.ErrDuplicateEmail):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, 9, duplicates)
}
