package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// AutoMigrate runs database migrations for the customer tables
func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{}, &domain.Address{})
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// FindByID retrieves a customer by ID
func (r *GormCustomerRepository) FindByID(id string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

// FindByMobile retrieves a customer by mobile number
func (r *GormCustomerRepository) FindByMobile(mobile string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("mobile = ?", mobile).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

// Update updates a customer record
func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// Count returns the total number of customers
func (r *GormCustomerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// ListByCustomer returns the address book in insertion order
func (r *GormAddressRepository) ListByCustomer(customerID string) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.db.Where("customer_id = ?", customerID).
		Order("position ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// FindByID retrieves one address, scoped to its owner
func (r *GormAddressRepository) FindByID(customerID, id string) (*domain.Address, error) {
	var address domain.Address
	err := r.db.Where("customer_id = ? AND id = ?", customerID, id).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}

// Upsert replaces an existing entry in place or appends a new one. An
// existing entry keeps its position so the display order is stable.
func (r *GormAddressRepository) Upsert(address *domain.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Address
		err := tx.Where("customer_id = ? AND id = ?", address.CustomerID, address.ID).
			First(&existing).Error
		switch {
		case err == nil:
			address.Position = existing.Position
			address.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			var count int64
			if err := tx.Model(&domain.Address{}).
				Where("customer_id = ?", address.CustomerID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count addresses: %w", err)
			}
			address.Position = int(count)
		default:
			return fmt.Errorf("failed to look up address: %w", err)
		}

		if err := tx.Save(address).Error; err != nil {
			return fmt.Errorf("failed to save address: %w", err)
		}
		return nil
	})
}

// Delete removes an address; deleting an unknown id reports ErrAddressNotFound
func (r *GormAddressRepository) Delete(customerID, id string) error {
	result := r.db.Where("customer_id = ? AND id = ?", customerID, id).
		Delete(&domain.Address{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

// ClearDefault drops the default flag from every entry in the customer's book
func (r *GormAddressRepository) ClearDefault(customerID string) error {
	err := r.db.Model(&domain.Address{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}
	return nil
}

// CountByCustomer returns the number of addresses in a customer's book
func (r *GormAddressRepository) CountByCustomer(customerID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Address{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}
	return count, nil
}
