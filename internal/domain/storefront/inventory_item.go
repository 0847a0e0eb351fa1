package storefront

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// InventoryItem tracks the stock counter for a single menu item. The unique
// index on MenuItemID makes it a 1:1 extension of MenuItem; writes go
// through an atomic upsert keyed on that column so concurrent updates can
// never leave duplicate rows or lose a write to a read-modify-write race.
type InventoryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_item_menu_item"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	Quantity   int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory row for a menu item
func NewInventoryItem(menuItemID uuid.UUID, quantity int) (*InventoryItem, error) {
	if menuItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENU_ITEM", "Menu item ID cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &InventoryItem{
		ID:         uuid.New(),
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UpdatedAt:  time.Now(),
	}, nil
}
