package domain

import (
	"errors"
	"time"
)

// Pooja is a bookable ritual in the catalog
type Pooja struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       int       `json:"price" gorm:"not null"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Pooja) TableName() string {
	return "poojas"
}

// VersionOption is one of the fixed service tiers offered at checkout
type VersionOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Rating      int    `json:"rating"`
	Description string `json:"desc"`
}

// AddOnOption is an optional extra bundled with a pooja booking
type AddOnOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// TimeSlot is a bookable window of the day
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Fixed checkout options. These are configuration, not per-pooja data; every
// pooja offers the same tiers and slots.
var (
	Versions = []VersionOption{
		{ID: "basic", Title: "Basic Version", Price: 1500, Rating: 4, Description: "Includes all essential pooja items and a certified pandit."},
		{ID: "premium", Title: "Premium Version", Price: 2500, Rating: 4, Description: "Includes extra floral decorations and special vastram for deity."},
		{ID: "super_premium", Title: "Super Premium", Price: 5000, Rating: 5, Description: "All-inclusive VIP arrangement with extended rituals and silver items."},
	}

	AddOns = []AddOnOption{
		{ID: "none", Label: "Only Pooja", Price: 0},
		{ID: "kit", Label: "Pooja + Pooja Kit", Price: 1500},
		{ID: "prasadam", Label: "Pooja + Kit + Prasadam", Price: 2000},
	}

	TimeSlots = []TimeSlot{
		{ID: "morning", Label: "Morning (06:00 AM - 11:00 AM)"},
		{ID: "afternoon", Label: "Afternoon (12:00 PM - 03:00 PM)"},
		{ID: "evening", Label: "Evening (05:00 PM - 08:30 PM)"},
	}
)

// Sentinel errors
var (
	ErrPoojaNotFound   = errors.New("pooja not found")
	ErrKitNotFound     = errors.New("pooja kit not found")
	ErrUnknownVersion  = errors.New("unknown version")
	ErrUnknownAddOn    = errors.New("unknown add-on")
	ErrUnknownTimeSlot = errors.New("unknown time slot")
	ErrUnknownPlan     = errors.New("unknown subscription plan")
)

// VersionByID looks up a service tier
func VersionByID(id string) (VersionOption, error) {
	for _, v := range Versions {
		if v.ID == id {
			return v, nil
		}
	}
	return VersionOption{}, ErrUnknownVersion
}

// AddOnByID looks up an add-on
func AddOnByID(id string) (AddOnOption, error) {
	for _, a := range AddOns {
		if a.ID == id {
			return a, nil
		}
	}
	return AddOnOption{}, ErrUnknownAddOn
}

// TimeSlotByID looks up a time slot
func TimeSlotByID(id string) (TimeSlot, error) {
	for _, s := range TimeSlots {
		if s.ID == id {
			return s, nil
		}
	}
	return TimeSlot{}, ErrUnknownTimeSlot
}

// PoojaRepository defines the contract for pooja catalog access
type PoojaRepository interface {
	FindAll(search, letter string) ([]Pooja, error)
	FindBySlug(slug string) (*Pooja, error)
}
