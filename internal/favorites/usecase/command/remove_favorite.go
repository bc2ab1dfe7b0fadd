package command

import (
	"context"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
)

// RemoveFavoriteCommand represents the command to unsave a catalog item
type RemoveFavoriteCommand struct {
	CustomerID string
	ItemID     string
}

// RemoveFavoriteHandler handles removing favorites
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle removes the item from the list. Removing an item that was never
// saved succeeds quietly.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.ItemID == "" {
		return domain.ErrItemIDRequired
	}
	return h.repo.Remove(cmd.CustomerID, cmd.ItemID)
}
