package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

// GetKitQuery represents the query to get one kit by slug
type GetKitQuery struct {
	Slug string
}

// GetKitHandler handles kit detail retrieval
type GetKitHandler struct {
	repo domain.KitRepository
}

// NewGetKitHandler creates a new get kit handler
func NewGetKitHandler(repo domain.KitRepository) *GetKitHandler {
	return &GetKitHandler{repo: repo}
}

// Handle returns the kit with all plan prices populated
func (h *GetKitHandler) Handle(ctx context.Context, q GetKitQuery) (*domain.Kit, error) {
	return h.repo.FindBySlug(q.Slug)
}
