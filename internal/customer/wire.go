//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/customer/delivery/http"
	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/internal/customer/repository"
	"github.com/bookmyseva/storefront/internal/customer/sms"
)

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// ProvideAddressRepository provides the address repository
func ProvideAddressRepository(db *gorm.DB) domain.AddressRepository {
	return repository.NewGormAddressRepository(db)
}

// ProvideOTPStore provides the Redis-backed OTP store
func ProvideOTPStore(client *redis.Client) domain.OTPStore {
	return repository.NewRedisOTPStore(client)
}

// ProvideOTPSender provides the default OTP sender
func ProvideOTPSender() domain.OTPSender {
	return sms.NewLogSender()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
	ProvideAddressRepository,
	ProvideOTPStore,
	ProvideOTPSender,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client) (*http.CustomerHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCustomerHandler,
	)
	return nil, nil
}
