package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// GetPageQuery represents the query to get a static page
type GetPageQuery struct {
	Slug string
}

// GetPageHandler handles static page retrieval
type GetPageHandler struct {
	repo domain.PageRepository
}

// NewGetPageHandler creates a new get page handler
func NewGetPageHandler(repo domain.PageRepository) *GetPageHandler {
	return &GetPageHandler{repo: repo}
}

// Handle returns the page; an unwritten page serves as empty content
func (h *GetPageHandler) Handle(ctx context.Context, q GetPageQuery) (*domain.Page, error) {
	return h.repo.FindBySlug(q.Slug)
}
