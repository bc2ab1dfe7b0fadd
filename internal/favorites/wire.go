//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/favorites/delivery/http"
	"github.com/bookmyseva/storefront/internal/favorites/domain"
	"github.com/bookmyseva/storefront/internal/favorites/repository"
)

// ProvideFavoriteRepository provides the favorite repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewGormFavoriteRepository(db)
}

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.FavoritesHandler, error) {
	wire.Build(
		ProvideFavoriteRepository,
		http.NewFavoritesHandler,
	)
	return nil, nil
}
