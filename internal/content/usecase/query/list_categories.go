package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// ListCategoriesQuery represents the query to list blog categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	repo domain.BlogRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.BlogRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle returns categories alphabetically
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) ([]domain.Category, error) {
	return h.repo.ListCategories()
}
