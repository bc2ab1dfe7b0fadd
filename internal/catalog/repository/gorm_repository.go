package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/catalog/domain"
)

// GormPoojaRepository implements PoojaRepository using GORM
type GormPoojaRepository struct {
	db *gorm.DB
}

// NewGormPoojaRepository creates a new GORM pooja repository
func NewGormPoojaRepository(db *gorm.DB) *GormPoojaRepository {
	return &GormPoojaRepository{db: db}
}

// FindAll lists poojas alphabetically, optionally narrowed by a search term
// and a starting letter
func (r *GormPoojaRepository) FindAll(search, letter string) ([]domain.Pooja, error) {
	query := r.db.Model(&domain.Pooja{})

	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if letter != "" {
		query = query.Where("UPPER(title) LIKE ?", strings.ToUpper(letter)+"%")
	}

	var poojas []domain.Pooja
	if err := query.Order("title ASC").Find(&poojas).Error; err != nil {
		return nil, fmt.Errorf("failed to list poojas: %w", err)
	}
	return poojas, nil
}

// FindBySlug retrieves a pooja by its slug
func (r *GormPoojaRepository) FindBySlug(slug string) (*domain.Pooja, error) {
	var pooja domain.Pooja
	if err := r.db.Where("slug = ?", slug).First(&pooja).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPoojaNotFound
		}
		return nil, fmt.Errorf("failed to find pooja: %w", err)
	}
	return &pooja, nil
}

// GormKitRepository implements KitRepository using GORM
type GormKitRepository struct {
	db *gorm.DB
}

// NewGormKitRepository creates a new GORM kit repository
func NewGormKitRepository(db *gorm.DB) *GormKitRepository {
	return &GormKitRepository{db: db}
}

// FindAll lists kits alphabetically, optionally narrowed by a search term and
// a starting letter
func (r *GormKitRepository) FindAll(search, letter string) ([]domain.Kit, error) {
	query := r.db.Model(&domain.Kit{})

	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if letter != "" {
		query = query.Where("UPPER(name) LIKE ?", strings.ToUpper(letter)+"%")
	}

	var kits []domain.Kit
	if err := query.Order("name ASC").Find(&kits).Error; err != nil {
		return nil, fmt.Errorf("failed to list kits: %w", err)
	}
	for i := range kits {
		kits[i].FillPricing()
	}
	return kits, nil
}

// FindBySlug retrieves a kit by its slug
func (r *GormKitRepository) FindBySlug(slug string) (*domain.Kit, error) {
	var kit domain.Kit
	if err := r.db.Where("slug = ?", slug).First(&kit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to find kit: %w", err)
	}
	kit.FillPricing()
	return &kit, nil
}
