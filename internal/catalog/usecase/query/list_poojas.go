package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

// ListPoojasQuery represents the query to list the pooja catalog. Letter
// narrows to titles starting with that letter, as in the alphabet rail.
type ListPoojasQuery struct {
	Search string
	Letter string
}

// ListPoojasHandler handles pooja catalog listing
type ListPoojasHandler struct {
	repo domain.PoojaRepository
}

// NewListPoojasHandler creates a new list poojas handler
func NewListPoojasHandler(repo domain.PoojaRepository) *ListPoojasHandler {
	return &ListPoojasHandler{repo: repo}
}

// Handle returns the alphabetically sorted catalog
func (h *ListPoojasHandler) Handle(ctx context.Context, q ListPoojasQuery) ([]domain.Pooja, error) {
	return h.repo.FindAll(q.Search, q.Letter)
}
