package command

import (
	"context"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
)

// AddFavoriteCommand represents the command to save a catalog item
type AddFavoriteCommand struct {
	CustomerID string
	Favorite   domain.Favorite
}

// AddFavoriteHandler handles saving favorites
type AddFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle saves the item. Saving an already saved item changes nothing.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
	favorite := cmd.Favorite
	favorite.CustomerID = cmd.CustomerID

	if err := favorite.Validate(); err != nil {
		return err
	}

	return h.repo.Add(&favorite)
}
