package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
)

// CatalogService serves the unauthenticated listings.
type CatalogService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
}

// Catalog handles HTTP endpoints for the public listings.
type Catalog struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(catalogService CatalogService, logger *logger.Logger) *Catalog {
	return &Catalog{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListPosts returns every post in stored order.
func (h *Catalog) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalogService.ListPosts(r.Context())
	if err != nil {
		h.logger.Error("Catalog handler: list posts failed", "error", err.Error())
		writeError(w, err)
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

// ListUsers returns every user without credential fields.
func (h *Catalog) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.catalogService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Catalog handler: list users failed", "error", err.Error())
		writeError(w, err)
		return
	}

	if users == nil {
		users = []model.PublicUser{}
	}

	writeJSON(w, http.StatusOK, users)
}
