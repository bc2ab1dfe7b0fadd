package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	customerdomain "github.com/bookmyseva/storefront/internal/customer/domain"
)

// Enquiry types. Festival enquiries come from the festival banner; the
// panchangam type is raised from the almanac's special event form.
const (
	TypeFestival   = "festival"
	TypePanchangam = "panchangam"
)

// Enquiry statuses
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// Enquiry is a lead captured from an event booking form. FormData keeps the
// editor-defined answers verbatim; its shape varies by enquiry type.
type Enquiry struct {
	ID           string  `json:"id" gorm:"primaryKey;type:uuid"`
	Type         string  `json:"type" gorm:"not null;index"`
	FestivalID   string  `json:"festivalId"`
	FestivalName string  `json:"festivalName"`
	Name         string  `json:"name" gorm:"not null"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone" gorm:"not null"`
	FormData     JSONMap `json:"formData" gorm:"type:jsonb"`

	Status    string    `json:"status" gorm:"not null;default:new"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Enquiry) TableName() string {
	return "enquiries"
}

// Sentinel errors
var (
	ErrNameRequired    = errors.New("name is required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrInvalidPhone    = errors.New("phone must be exactly 10 digits")
	ErrTypeRequired    = errors.New("enquiry type is required")
	ErrInvalidFormData = errors.New("invalid form data")
	ErrEnquiryNotFound = errors.New("enquiry not found")
)

// Validate checks the fixed contact fields every enquiry must carry. The
// phone follows the same 10-digit rule as a customer mobile.
func (e *Enquiry) Validate() error {
	if e.Type == "" {
		return ErrTypeRequired
	}
	if e.Name == "" {
		return ErrNameRequired
	}
	if e.Phone == "" {
		return ErrPhoneRequired
	}
	if err := customerdomain.ValidateMobile(e.Phone); err != nil {
		return ErrInvalidPhone
	}
	return nil
}

// JSONMap is a JSONB-backed free-form object
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported form data type %T", value)
	}
	return json.Unmarshal(data, m)
}

// EnquiryRepository defines the contract for enquiry data access
type EnquiryRepository interface {
	Create(enquiry *Enquiry) error
	ListByType(enquiryType string) ([]Enquiry, error)
}
