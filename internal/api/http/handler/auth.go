package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/service"
)

// tokenHeader is the response header carrying the issued bearer token.
const tokenHeader = "x-token"

// AuthService defines sign-in and sign-up operations.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (model.PublicUser, string, error)
	SignUp(ctx context.Context, params service.SignUpParams) (model.PublicUser, string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
	Name           string `json:"name"`
}

// SignIn verifies credentials and responds with the public user and the
// issued token in the x-token header.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	h.logger.Debug("Auth handler: processing sign-in request", "email", req.Email)

	user, token, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: sign-in failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.logger.Info("Auth handler: sign-in completed", "email", req.Email)

	w.Header().Set(tokenHeader, token)
	writeJSON(w, http.StatusOK, user)
}

// SignUp registers a new account and responds with the public user and the
// issued token in the x-token header.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", model.ErrValidation))
		return
	}

	h.logger.Debug("Auth handler: processing sign-up request", "email", req.Email)

	user, token, err := h.authService.SignUp(r.Context(), service.SignUpParams{
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
		Name:           req.Name,
	})
	if err != nil {
		h.logger.Error("Auth handler: sign-up failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.logger.Info("Auth handler: sign-up completed", "email", req.Email)

	w.Header().Set(tokenHeader, token)
	writeJSON(w, http.StatusCreated, user)
}
