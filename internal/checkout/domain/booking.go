package domain

import (
	"errors"
	"time"
)

// Booking statuses
const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
	StatusCancelled      = "cancelled"
)

// Booking is a confirmed checkout: a pooja service on a date and slot, or a
// kit purchase on a plan. The quote fields are the server's own computation,
// frozen at creation.
type Booking struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid"`
	CustomerID string `json:"customer_id" gorm:"not null;index"`
	Kind       string `json:"kind" gorm:"not null"`
	ItemSlug   string `json:"itemSlug" gorm:"not null"`
	ItemTitle  string `json:"itemTitle"`

	// Pooja bookings
	VersionID  string     `json:"versionId,omitempty"`
	AddOnID    string     `json:"addonId,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	TimeSlotID string     `json:"timeSlotId,omitempty"`

	// Kit purchases
	Plan string `json:"plan,omitempty"`

	AddressID   string `json:"addressId" gorm:"not null"`
	PaymentMode string `json:"paymentMode" gorm:"not null"`
	UseCoins    bool   `json:"useCoins"`
	CouponCode  string `json:"couponCode,omitempty"`

	SubTotal      int `json:"subTotal" gorm:"not null"`
	ServiceFee    int `json:"serviceFee" gorm:"not null"`
	CoinsDiscount int `json:"coinsDiscount" gorm:"not null"`
	GrandTotal    int `json:"grandTotal" gorm:"not null"`
	AdvanceAmount int `json:"advanceAmount" gorm:"not null"`
	AmountToPay   int `json:"amountToPay" gorm:"not null"`

	Status    string    `json:"status" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// Sentinel errors
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidPaymentMode = errors.New("payment mode must be full or advance")
	ErrDateRequired       = errors.New("a pooja booking needs a date")
	ErrSlotRequired       = errors.New("a pooja booking needs a time slot")
	ErrAddressRequired    = errors.New("a delivery address is required")
	ErrPastDate           = errors.New("booking date cannot be in the past")
)

// BookingRepository defines the contract for booking data access
type BookingRepository interface {
	Create(booking *Booking) error
	FindByID(customerID, id string) (*Booking, error)
	ListByCustomer(customerID string) ([]Booking, error)
}
