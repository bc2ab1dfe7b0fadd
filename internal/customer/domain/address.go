package domain

import (
	"fmt"
	"time"
)

// Address is one entry in a customer's address book. Position preserves
// insertion order for display.
type Address struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	CustomerID string    `json:"customer_id" gorm:"not null;index"`
	Label      string    `json:"label"`
	Name       string    `json:"name" gorm:"not null"`
	HouseNo    string    `json:"houseNo" gorm:"not null"`
	Area       string    `json:"area"`
	Landmark   string    `json:"landmark"`
	City       string    `json:"city" gorm:"not null"`
	State      string    `json:"state"`
	Pincode    string    `json:"pincode"`
	Phone      string    `json:"phone" gorm:"not null"`
	IsDefault  bool      `json:"isDefault"`
	Position   int       `json:"-" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Address) TableName() string {
	return "addresses"
}

// Validate enforces the required fields of an address book entry. A failed
// validation aborts the write entirely; there is no partial persistence.
func (a *Address) Validate() error {
	missing := ""
	switch {
	case a.Name == "":
		missing = "name"
	case a.HouseNo == "":
		missing = "houseNo"
	case a.City == "":
		missing = "city"
	case a.Phone == "":
		missing = "phone"
	}
	if missing != "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, missing)
	}
	return nil
}

// Street flattens the structured fields into the single street line used by
// the profile mirror.
func (a *Address) Street() string {
	street := a.HouseNo
	if a.Area != "" {
		street += ", " + a.Area
	}
	if a.Landmark != "" {
		street += ", " + a.Landmark
	}
	return street
}

// AddressRepository defines the contract for address book data access
type AddressRepository interface {
	ListByCustomer(customerID string) ([]Address, error)
	FindByID(customerID, id string) (*Address, error)
	Upsert(address *Address) error
	Delete(customerID, id string) error
	CountByCustomer(customerID string) (int64, error)
	// ClearDefault drops the default flag from every entry in the book,
	// making room for a new default.
	ClearDefault(customerID string) error
}
