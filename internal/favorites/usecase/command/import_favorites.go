package command

import (
	"context"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
	"github.com/bookmyseva/storefront/pkg/logger"
)

// ImportFavoritesCommand represents the command to replace the list with a
// snapshot the client kept locally before signing in
type ImportFavoritesCommand struct {
	CustomerID string
	Favorites  []domain.Favorite
}

// ImportFavoritesHandler handles favorites import
type ImportFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewImportFavoritesHandler creates a new import favorites handler
func NewImportFavoritesHandler(repo domain.FavoriteRepository) *ImportFavoritesHandler {
	return &ImportFavoritesHandler{repo: repo}
}

// Handle replaces the stored list with the snapshot. Entries that fail
// validation are dropped rather than failing the import; a fully corrupt
// snapshot therefore yields an empty list, never an error.
func (h *ImportFavoritesHandler) Handle(ctx context.Context, cmd ImportFavoritesCommand) ([]domain.Favorite, error) {
	valid := make([]domain.Favorite, 0, len(cmd.Favorites))
	seen := make(map[string]bool, len(cmd.Favorites))
	dropped := 0

	for _, favorite := range cmd.Favorites {
		if err := favorite.Validate(); err != nil || seen[favorite.ItemID] {
			dropped++
			continue
		}
		seen[favorite.ItemID] = true
		valid = append(valid, favorite)
	}

	if dropped > 0 {
		logger.Warn(ctx).
			Str("customer_id", cmd.CustomerID).
			Int("dropped", dropped).
			Msg("Dropped invalid entries from favorites import")
	}

	if err := h.repo.ReplaceAll(cmd.CustomerID, valid); err != nil {
		return nil, err
	}
	return valid, nil
}
