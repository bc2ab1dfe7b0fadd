package domain

import "time"

// Sloka types served to the About sidebar
const (
	SlokaGita     = "gita"
	SlokaKidsGita = "kids-gita"
)

// Page is a static CMS page addressed by slug, about-us being the one the
// storefront renders today. Content is sanitized HTML.
type Page struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Page) TableName() string {
	return "pages"
}

// GitaSloka is one verse shown in the About sidebar
type GitaSloka struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Type        string `json:"type" gorm:"not null;index"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Sloka       string `json:"sloka"`
	Translation string `json:"translation"`
	Position    int    `json:"-" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (GitaSloka) TableName() string {
	return "gita_slokas"
}

// ValidateSlokaType checks the type filter
func ValidateSlokaType(slokaType string) error {
	if slokaType != SlokaGita && slokaType != SlokaKidsGita {
		return ErrUnknownSlokaType
	}
	return nil
}

// PageRepository defines the contract for static page and sloka access
type PageRepository interface {
	FindBySlug(slug string) (*Page, error)
	ListSlokas(slokaType string) ([]GitaSloka, error)
}
