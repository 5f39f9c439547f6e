package context

import (
	"context"

	"github.com/dtroode/postboard-server/internal/model"
)

type contextKey string

// emailKey is the context key used to store and retrieve the authenticated
// email.
const emailKey contextKey = "email"

// Manager stores and retrieves the authenticated email on a request context.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetEmailToContext returns a new context carrying the given email.
func (m *Manager) SetEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext retrieves the email from the request context.
//
// Returns the email and a boolean indicating whether one was set.
func (m *Manager) GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
