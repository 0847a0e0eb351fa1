package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/storefront"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByMenuItem finds the inventory row for a menu item
func (r *GormInventoryRepository) FindByMenuItem(ctx context.Context, menuItemID uuid.UUID) (*storefront.InventoryItem, error) {
	var item storefront.InventoryItem
	if err := r.db.WithContext(ctx).
		First(&item, "menu_item_id = ?", menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Upsert inserts or overwrites the inventory row for a menu item in a
// single ON CONFLICT statement keyed on the unique menu_item_id column.
// Concurrent calls serialize on the row; the last writer wins and no
// duplicate rows can appear.
func (r *GormInventoryRepository) Upsert(ctx context.Context, menuItemID uuid.UUID, quantity int) (*storefront.InventoryItem, error) {
	item, err := storefront.NewInventoryItem(menuItemID, quantity)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   item.Quantity,
				"updated_at": item.UpdatedAt,
			}),
		}).
		Create(item).Error; err != nil {
		return nil, err
	}

	// On conflict the generated ID was discarded; read the winning row back
	return r.FindByMenuItem(ctx, menuItemID)
}

// Ensure GormInventoryRepository implements InventoryRepository
var _ storefront.InventoryRepository = (*GormInventoryRepository)(nil)
