package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/content/domain"
)

// GormBlogRepository implements BlogRepository using GORM
type GormBlogRepository struct {
	db *gorm.DB
}

// NewGormBlogRepository creates a new GORM blog repository
func NewGormBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// FindAll lists posts, newest first, optionally filtered by status
func (r *GormBlogRepository) FindAll(status string) ([]domain.Blog, error) {
	query := r.db.Model(&domain.Blog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var blogs []domain.Blog
	if err := query.Order("published_at DESC NULLS LAST, created_at DESC").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// FindByID retrieves one post by id or slug
func (r *GormBlogRepository) FindByID(id string) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Where("id = ? OR slug = ?", id, id).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}
	return &blog, nil
}

// ListCategories returns all blog categories
func (r *GormBlogRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GormPanchangamRepository implements PanchangamRepository using GORM
type GormPanchangamRepository struct {
	db *gorm.DB
}

// NewGormPanchangamRepository creates a new GORM panchangam repository
func NewGormPanchangamRepository(db *gorm.DB) *GormPanchangamRepository {
	return &GormPanchangamRepository{db: db}
}

// FindByDate retrieves the almanac entry for one date
func (r *GormPanchangamRepository) FindByDate(date string) (*domain.Panchangam, error) {
	var panchangam domain.Panchangam
	if err := r.db.Where("date = ?", date).First(&panchangam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPanchangamNotFound
		}
		return nil, fmt.Errorf("failed to find panchangam: %w", err)
	}
	return &panchangam, nil
}

// GormPageRepository implements PageRepository using GORM
type GormPageRepository struct {
	db *gorm.DB
}

// NewGormPageRepository creates a new GORM page repository
func NewGormPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// FindBySlug retrieves a static page
func (r *GormPageRepository) FindBySlug(slug string) (*domain.Page, error) {
	var page domain.Page
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// An unwritten page serves as empty, not as an error
			return &domain.Page{Slug: slug}, nil
		}
		return nil, fmt.Errorf("failed to find page: %w", err)
	}
	return &page, nil
}

// ListSlokas returns the verses of one type in display order
func (r *GormPageRepository) ListSlokas(slokaType string) ([]domain.GitaSloka, error) {
	var slokas []domain.GitaSloka
	err := r.db.Where("type = ?", slokaType).
		Order("position ASC").
		Find(&slokas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list slokas: %w", err)
	}
	return slokas, nil
}
