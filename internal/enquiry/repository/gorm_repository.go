package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/enquiry/domain"
)

// GormEnquiryRepository implements EnquiryRepository using GORM
type GormEnquiryRepository struct {
	db *gorm.DB
}

// NewGormEnquiryRepository creates a new GORM enquiry repository
func NewGormEnquiryRepository(db *gorm.DB) *GormEnquiryRepository {
	return &GormEnquiryRepository{db: db}
}

// Create inserts a new enquiry
func (r *GormEnquiryRepository) Create(enquiry *domain.Enquiry) error {
	if err := r.db.Create(enquiry).Error; err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

// ListByType returns enquiries, newest first, optionally filtered by type
func (r *GormEnquiryRepository) ListByType(enquiryType string) ([]domain.Enquiry, error) {
	query := r.db.Model(&domain.Enquiry{})
	if enquiryType != "" {
		query = query.Where("type = ?", enquiryType)
	}

	var enquiries []domain.Enquiry
	if err := query.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return enquiries, nil
}
