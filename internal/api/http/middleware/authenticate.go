package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// Authenticate validates bearer tokens and injects the verified email into
// the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes the
// request on with the verified email in its context. Requests without a
// valid token are rejected with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		email, err := m.authenticate(tokenString)
		if err != nil {
			m.logger.Info("Authenticate middleware: rejected request",
				"path", r.URL.Path,
				"error", err.Error())
			writeUnauthorized(w, err)
			return
		}

		ctx := m.contextManager.SetEmailToContext(r.Context(), email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", model.ErrMissingToken
	}

	email, err := m.tokenManager.Parse(tokenString)
	if err != nil {
		return "", model.ErrInvalidToken
	}

	if email == "" {
		return "", model.ErrInvalidToken
	}

	return email, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := "invalid authorization token"
	if errors.Is(err, model.ErrMissingToken) {
		msg = "missing authorization token"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
