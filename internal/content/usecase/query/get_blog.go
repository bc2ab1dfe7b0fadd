package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// GetBlogQuery represents the query to get one blog post
type GetBlogQuery struct {
	ID string
}

// GetBlogHandler handles blog retrieval
type GetBlogHandler struct {
	repo domain.BlogRepository
}

// NewGetBlogHandler creates a new get blog handler
func NewGetBlogHandler(repo domain.BlogRepository) *GetBlogHandler {
	return &GetBlogHandler{repo: repo}
}

// Handle returns the post by id or slug
func (h *GetBlogHandler) Handle(ctx context.Context, q GetBlogQuery) (*domain.Blog, error) {
	return h.repo.FindByID(q.ID)
}
