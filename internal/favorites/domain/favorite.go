package domain

import (
	"errors"
	"time"
)

// Item kinds a favorite can point at
const (
	KindPooja = "pooja"
	KindKit   = "kit"
)

// Favorite is a saved catalog item. ItemID is the catalog identity ("pooja:"
// or "kit:" prefixed slug on the wire); the denormalized display fields are
// snapshotted at save time so the list renders without catalog lookups.
type Favorite struct {
	CustomerID  string    `json:"-" gorm:"primaryKey"`
	ItemID      string    `json:"id" gorm:"primaryKey"`
	Kind        string    `json:"type" gorm:"not null"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Price       int       `json:"price"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty"`
	Position    int       `json:"-" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"-"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// Sentinel errors
var (
	ErrInvalidKind    = errors.New("favorite type must be pooja or kit")
	ErrItemIDRequired = errors.New("item id is required")
)

// Validate checks the identity fields of a favorite
func (f *Favorite) Validate() error {
	if f.ItemID == "" {
		return ErrItemIDRequired
	}
	if f.Kind != KindPooja && f.Kind != KindKit {
		return ErrInvalidKind
	}
	return nil
}

// FavoriteRepository defines the contract for favorites data access.
// Add and Remove are idempotent: re-adding an existing item leaves the list
// unchanged and removing an absent one is a no-op.
type FavoriteRepository interface {
	List(customerID string) ([]Favorite, error)
	Add(favorite *Favorite) error
	Remove(customerID, itemID string) error
	Exists(customerID, itemID string) (bool, error)
	ReplaceAll(customerID string, favorites []Favorite) error
}
