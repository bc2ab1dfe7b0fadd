//go:build wireinject
// +build wireinject

package content

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/content/delivery/http"
	"github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/content/repository"
)

// ProvideBlogRepository provides the blog repository
func ProvideBlogRepository(db *gorm.DB) domain.BlogRepository {
	return repository.NewGormBlogRepository(db)
}

// ProvidePanchangamRepository provides the panchangam repository
func ProvidePanchangamRepository(db *gorm.DB) domain.PanchangamRepository {
	return repository.NewGormPanchangamRepository(db)
}

// ProvidePageRepository provides the page repository
func ProvidePageRepository(db *gorm.DB) domain.PageRepository {
	return repository.NewGormPageRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBlogRepository,
	ProvidePanchangamRepository,
	ProvidePageRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ContentHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewContentHandler,
	)
	return nil, nil
}
