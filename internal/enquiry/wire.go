//go:build wireinject
// +build wireinject

package enquiry

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	contentdomain "github.com/bookmyseva/storefront/internal/content/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/delivery/http"
	"github.com/bookmyseva/storefront/internal/enquiry/domain"
	"github.com/bookmyseva/storefront/internal/enquiry/repository"
	"github.com/bookmyseva/storefront/internal/enquiry/usecase/command"
)

// ProvideEnquiryRepository provides the enquiry repository
func ProvideEnquiryRepository(db *gorm.DB) domain.EnquiryRepository {
	return repository.NewGormEnquiryRepository(db)
}

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	panchangams contentdomain.PanchangamRepository,
	publisher command.EnquiryEventPublisher,
) (*http.EnquiryHandler, error) {
	wire.Build(
		ProvideEnquiryRepository,
		http.NewEnquiryHandler,
	)
	return nil, nil
}
