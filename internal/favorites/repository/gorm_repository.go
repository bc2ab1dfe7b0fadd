package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// List returns the customer's favorites in the order they were added
func (r *GormFavoriteRepository) List(customerID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.Where("customer_id = ?", customerID).
		Order("position ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Add appends a favorite. Adding an item that is already saved is a no-op;
// the existing snapshot and position win.
func (r *GormFavoriteRepository) Add(favorite *domain.Favorite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Favorite{}).
			Where("customer_id = ?", favorite.CustomerID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count favorites: %w", err)
		}
		favorite.Position = int(count)

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite).Error
		if err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		return nil
	})
}

// Remove deletes a favorite. Removing an item that is not saved is a no-op,
// mirroring Add's idempotency.
func (r *GormFavoriteRepository) Remove(customerID, itemID string) error {
	result := r.db.Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	return nil
}

// Exists reports whether an item is saved
func (r *GormFavoriteRepository) Exists(customerID, itemID string) (bool, error) {
	var favorite domain.Favorite
	err := r.db.Where("customer_id = ? AND item_id = ?", customerID, itemID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}

// ReplaceAll swaps the whole list in one transaction, used when a client
// imports a locally kept list after signing in
func (r *GormFavoriteRepository) ReplaceAll(customerID string, favorites []domain.Favorite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerID).
			Delete(&domain.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to clear favorites: %w", err)
		}
		if len(favorites) == 0 {
			return nil
		}
		for i := range favorites {
			favorites[i].CustomerID = customerID
			favorites[i].Position = i
		}
		if err := tx.Create(&favorites).Error; err != nil {
			return fmt.Errorf("failed to import favorites: %w", err)
		}
		return nil
	})
}
