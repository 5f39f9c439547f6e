package file

import (
	"context"
	"fmt"

	"github.com/dtroode/postboard-server/internal/model"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
)

const usersCollection = "users"

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users in the "users" collection.
type UserRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

// GetByEmail scans the collection in stored order and returns the first
// user with an exactly matching email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := storage.Load[model.User](r.store, usersCollection)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	users, err := storage.Load[model.User](r.store, usersCollection)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users, err := storage.Load[model.User](r.store, usersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return users, nil
}

// Create appends the user to the collection. The uniqueness check and the
// append run under the collection lock, so concurrent creates cannot both
// claim the same email or overwrite each other.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	err := storage.Update(r.store, usersCollection, func(users []model.User) ([]model.User, error) {
		for _, existing := range users {
			if existing.Email == user.Email {
				return nil, model.ErrDuplicateEmail
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
