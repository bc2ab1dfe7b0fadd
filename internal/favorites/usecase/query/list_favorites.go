package query

import (
	"context"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
)

// ListFavoritesQuery represents the query to list a customer's favorites
type ListFavoritesQuery struct {
	CustomerID string
}

// ListFavoritesHandler handles favorites listing
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle returns favorites in the order they were added
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Favorite, error) {
	return h.repo.List(q.CustomerID)
}
