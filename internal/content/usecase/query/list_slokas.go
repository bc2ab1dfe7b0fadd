package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// ListSlokasQuery represents the query to list Gita slokas by type
type ListSlokasQuery struct {
	Type string
}

// ListSlokasHandler handles sloka listing
type ListSlokasHandler struct {
	repo domain.PageRepository
}

// NewListSlokasHandler creates a new list slokas handler
func NewListSlokasHandler(repo domain.PageRepository) *ListSlokasHandler {
	return &ListSlokasHandler{repo: repo}
}

// Handle returns the verses of the requested type in display order
func (h *ListSlokasHandler) Handle(ctx context.Context, q ListSlokasQuery) ([]domain.GitaSloka, error) {
	if err := domain.ValidateSlokaType(q.Type); err != nil {
		return nil, err
	}
	return h.repo.ListSlokas(q.Type)
}
