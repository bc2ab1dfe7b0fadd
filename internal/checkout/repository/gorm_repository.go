package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/checkout/domain"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create inserts a new booking
func (r *GormBookingRepository) Create(booking *domain.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByID retrieves one booking, scoped to its owner
func (r *GormBookingRepository) FindByID(customerID, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.Where("customer_id = ? AND id = ?", customerID, id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

// ListByCustomer returns the customer's bookings, newest first
func (r *GormBookingRepository) ListByCustomer(customerID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
