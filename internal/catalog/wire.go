//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/catalog/delivery/http"
	"github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/catalog/repository"
)

// ProvidePoojaRepository provides the pooja repository
func ProvidePoojaRepository(db *gorm.DB) domain.PoojaRepository {
	return repository.NewGormPoojaRepository(db)
}

// ProvideKitRepository provides the kit repository
func ProvideKitRepository(db *gorm.DB) domain.KitRepository {
	return repository.NewGormKitRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePoojaRepository,
	ProvideKitRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
