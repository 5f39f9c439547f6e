package model

import "context"

// ContextManager sets and retrieves the authenticated identity on a request
// context.
type ContextManager interface {
	SetEmailToContext(ctx context.Context, email string) context.Context
	GetEmailFromContext(ctx context.Context) (string, bool)
}
