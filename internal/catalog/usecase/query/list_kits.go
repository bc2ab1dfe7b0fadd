package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

// ListKitsQuery represents the query to list the kit catalog
type ListKitsQuery struct {
	Search string
	Letter string
}

// ListKitsHandler handles kit catalog listing
type ListKitsHandler struct {
	repo domain.KitRepository
}

// NewListKitsHandler creates a new list kits handler
func NewListKitsHandler(repo domain.KitRepository) *ListKitsHandler {
	return &ListKitsHandler{repo: repo}
}

// Handle returns the alphabetically sorted kit catalog
func (h *ListKitsHandler) Handle(ctx context.Context, q ListKitsQuery) ([]domain.Kit, error) {
	return h.repo.FindAll(q.Search, q.Letter)
}
