package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Customer represents a storefront customer. Authentication is mobile-OTP
// based; there is no password.
type Customer struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string          `json:"name" gorm:"not null"`
	Email     string          `json:"email" gorm:"index"`
	Mobile    string          `json:"mobile" gorm:"uniqueIndex;not null"`
	Coins     int             `json:"coins" gorm:"not null;default:0"`
	Address   MirroredAddress `json:"address" gorm:"embedded;embeddedPrefix:addr_"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
}

// MirroredAddress is the single "primary" address kept on the profile
// record. The address book lives in its own table; one entry is mirrored
// here on a best-effort basis.
type MirroredAddress struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// Sentinel errors. ErrCustomerNotFound's message is part of the client
// contract: the web client matches on "User not found" to hand a login
// attempt over to the registration flow.
var (
	ErrCustomerNotFound = errors.New("User not found. Please register first")
	ErrMobileTaken      = errors.New("mobile number is already registered")
	ErrInvalidMobile    = errors.New("mobile number must be exactly 10 digits")
	ErrInvalidOTP       = errors.New("invalid or expired OTP")
	ErrOTPCooldown      = errors.New("please wait before requesting another OTP")
	ErrValidation       = errors.New("validation failed")
	ErrAddressNotFound  = errors.New("address not found")
	ErrConfirmRequired  = errors.New("deletion must be confirmed")
)

// ValidateMobile checks the 10-digit rule before any OTP is generated or
// dispatched.
func ValidateMobile(mobile string) error {
	if len(mobile) != 10 {
		return ErrInvalidMobile
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return ErrInvalidMobile
		}
	}
	return nil
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id string) (*Customer, error)
	FindByMobile(mobile string) (*Customer, error)
	Update(customer *Customer) error
	Count() (int64, error)
}

// OTPStore keeps hashed one-time passcodes with a TTL and enforces the
// resend cooldown. Backed by Redis.
type OTPStore interface {
	Save(ctx context.Context, mobile, codeHash string) error
	Get(ctx context.Context, mobile string) (string, error)
	Delete(ctx context.Context, mobile string) error
	StartCooldown(ctx context.Context, mobile string) error
	CooldownActive(ctx context.Context, mobile string) (bool, error)
}

// OTPSender dispatches the passcode to the customer. The SMS gateway is an
// external collaborator; a logging sender ships as the default.
type OTPSender interface {
	Send(ctx context.Context, mobile, code string) error
}
