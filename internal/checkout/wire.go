//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/bookmyseva/storefront/internal/catalog/domain"
	"github.com/bookmyseva/storefront/internal/checkout/delivery/http"
	"github.com/bookmyseva/storefront/internal/checkout/domain"
	"github.com/bookmyseva/storefront/internal/checkout/repository"
	"github.com/bookmyseva/storefront/internal/checkout/usecase/command"
	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
)

// ProvideBookingRepository provides the booking repository
func ProvideBookingRepository(db *gorm.DB) domain.BookingRepository {
	return repository.NewGormBookingRepository(db)
}

// InitializeHTTPHandler initializes the HTTP handler with all dependencies.
// The catalog and address repositories come from their own domains; the
// publisher is shared service-wide.
func InitializeHTTPHandler(
	db *gorm.DB,
	poojas catalogdomain.PoojaRepository,
	kits catalogdomain.KitRepository,
	addresses customerdomain.AddressRepository,
	publisher command.BookingEventPublisher,
) (*http.CheckoutHandler, error) {
	wire.Build(
		ProvideBookingRepository,
		http.NewCheckoutHandler,
	)
	return nil, nil
}
