package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// ListBlogsQuery represents the query to list blog posts
type ListBlogsQuery struct {
	Status string
}

// ListBlogsHandler handles blog listing
type ListBlogsHandler struct {
	repo domain.BlogRepository
}

// NewListBlogsHandler creates a new list blogs handler
func NewListBlogsHandler(repo domain.BlogRepository) *ListBlogsHandler {
	return &ListBlogsHandler{repo: repo}
}

// Handle returns posts newest first
func (h *ListBlogsHandler) Handle(ctx context.Context, q ListBlogsQuery) ([]domain.Blog, error) {
	return h.repo.FindAll(q.Status)
}
