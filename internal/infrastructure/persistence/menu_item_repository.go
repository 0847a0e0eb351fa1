package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/storefront"
)

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by its ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*storefront.MenuItem, error) {
	var item storefront.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByOutlet finds all menu items for an outlet, newest first
func (r *GormMenuItemRepository) FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]storefront.MenuItem, error) {
	var items []storefront.MenuItem
	if err := r.db.WithContext(ctx).
		Where("outlet_id = ?", outletID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Insert persists a newly created menu item
func (r *GormMenuItemRepository) Insert(ctx context.Context, item *storefront.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update persists changes to an existing menu item
func (r *GormMenuItemRepository) Update(ctx context.Context, item *storefront.MenuItem) error {
	result := r.db.WithContext(ctx).
		Model(item).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price,
			"is_available": item.IsAvailable,
			"updated_at":   item.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a menu item; the inventory row cascades at the database level
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&storefront.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ storefront.MenuItemRepository = (*GormMenuItemRepository)(nil)
