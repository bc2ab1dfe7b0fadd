package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
)

// IsFavoriteQuery represents the query to check whether an item is saved
type IsFavoriteQuery struct {
	CustomerID string
	ItemID     string
}

// IsFavoriteHandler handles favorite membership checks
type IsFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewIsFavoriteHandler creates a new is favorite handler
func NewIsFavoriteHandler(repo domain.FavoriteRepository) *IsFavoriteHandler {
	return &IsFavoriteHandler{repo: repo}
}

// Handle reports whether the item is in the customer's list
func (h *IsFavoriteHandler) Handle(ctx context.Context, q IsFavoriteQuery) (bool, error) {
	return h.repo.Exists(q.CustomerID, q.ItemID)
}
