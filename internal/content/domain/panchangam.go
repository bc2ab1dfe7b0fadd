package domain

import (
	"time"
)

// Panchangam is the almanac entry for one calendar date, with an optional
// special event whose enquiry form is editor-defined.
type Panchangam struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Date string `json:"date" gorm:"uniqueIndex;not null"`

	Samvatsaram    string `json:"samvatsaram"`
	Maasam         string `json:"maasam"`
	Tithi          string `json:"tithi"`
	Nakshatra      string `json:"nakshatra"`
	Yoga           string `json:"yoga"`
	Karana         string `json:"karana"`
	Sunrise        string `json:"sunrise"`
	Sunset         string `json:"sunset"`
	Rahu           string `json:"rahu"`
	AuspiciousTime string `json:"auspiciousTime"`

	SpecialEventName        string     `json:"specialEventName,omitempty"`
	SpecialEventDeity       string     `json:"specialEventDeity,omitempty"`
	SpecialEventPooja       string     `json:"specialEventPooja,omitempty"`
	SpecialEventImage       string     `json:"specialEventImage,omitempty"`
	SpecialEventBookingLink string     `json:"specialEventBookingLink,omitempty"`
	BookingButtonLabel      string     `json:"bookingButtonLabel,omitempty"`
	IsBookingEnabled        bool       `json:"isBookingEnabled"`
	FormFields              FormFields `json:"formFields,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Panchangam) TableName() string {
	return "panchangams"
}

// ValidateDate enforces the YYYY-MM-DD query format
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// PanchangamRepository defines the contract for almanac data access
type PanchangamRepository interface {
	FindByDate(date string) (*Panchangam, error)
}
