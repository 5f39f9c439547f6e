package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// CommentService lists comments for an authenticated identity.
type CommentService interface {
	ListForUser(ctx context.Context, email string) ([]model.Comment, error)
}

// Comment handles HTTP endpoints for comment retrieval.
type Comment struct {
	commentService CommentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewComment creates a new Comment handler.
func NewComment(commentService CommentService, contextManager model.ContextManager, logger *logger.Logger) *Comment {
	return &Comment{
		commentService: commentService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the caller's comments. The caller identity is taken from the
// request context set by the authentication middleware.
func (h *Comment) List(w http.ResponseWriter, r *http.Request) {
	email, ok := h.contextManager.GetEmailFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrMissingToken)
		return
	}

	h.logger.Debug("Comment handler: processing list request", "email", email)

	comments, err := h.commentService.ListForUser(r.Context(), email)
	if err != nil {
		h.logger.Error("Comment handler: list failed",
			"email", email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}

	writeJSON(w, http.StatusOK, comments)
}
