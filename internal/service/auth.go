package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Auth orchestrates sign-in and sign-up.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// SignUpParams contains the sign-up request fields.
type SignUpParams struct {
	Email          string
	Password       string
	RepeatPassword string
	Name           string
}

func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignIn verifies the credentials and issues a token bound to the user's
// email. The returned user carries no credential material.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.PublicUser, string, error) {
	a.logger.Debug("Auth service: starting sign-in", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: user not found", "email", email)
			return model.PublicUser{}, "", model.ErrNotFound
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return model.PublicUser{}, "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: sign-in completed", "email", email, "user_id", user.ID)

	return user.ToPublic(), token, nil
}

// SignUp validates the registration input, persists a new user with a
// freshly generated id and a bcrypt-hashed password, and issues a token.
func (a *Auth) SignUp(ctx context.Context, params SignUpParams) (model.PublicUser, string, error) {
	a.logger.Debug("Auth service: starting sign-up", "email", params.Email)

	if params.Email == "" {
		return model.PublicUser{}, "", fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	if params.Password == "" {
		return model.PublicUser{}, "", fmt.Errorf("%w: password is required", model.ErrValidation)
	}
	if params.RepeatPassword != params.Password {
		return model.PublicUser{}, "", fmt.Errorf("%w: passwords do not match", model.ErrValidation)
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: email already taken", "email", params.Email)
		return model.PublicUser{}, "", model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.PublicUser{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:       uuid.NewString(),
		Email:    params.Email,
		Password: string(hash),
		Name:     params.Name,
	}

	// The store enforces uniqueness again on insert; the pre-check above
	// only gives the common case a cleaner path.
	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Auth service: email already taken", "email", params.Email)
			return model.PublicUser{}, "", model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.Generate(created.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", params.Email,
			"error", err.Error())
		return model.PublicUser{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: sign-up completed", "email", created.Email, "user_id", created.ID)

	return created.ToPublic(), token, nil
}
