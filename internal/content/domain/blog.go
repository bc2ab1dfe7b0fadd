package domain

import (
	"errors"
	"time"
)

// Blog statuses. Only published posts are served to the storefront.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Blog is an editorial post
type Blog struct {
	ID          string     `json:"_id" gorm:"primaryKey;type:uuid"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	Status      string     `json:"status" gorm:"not null;default:draft;index"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}

// Category groups blog posts
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// Sentinel errors
var (
	ErrBlogNotFound       = errors.New("blog post not found")
	ErrPanchangamNotFound = errors.New("no panchangam for that date")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrUnknownSlokaType   = errors.New("sloka type must be gita or kids-gita")
)

// BlogRepository defines the contract for blog data access
type BlogRepository interface {
	FindAll(status string) ([]Blog, error)
	FindByID(id string) (*Blog, error)
	ListCategories() ([]Category, error)
}
