package storefront

import (
	"context"

	"github.com/google/uuid"
)

// OutletRepository defines the interface for outlet persistence
type OutletRepository interface {
	// FindByID finds an outlet by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Outlet, error)

	// FindByPincode finds all outlets with an exact pincode match,
	// newest first
	FindByPincode(ctx context.Context, pincode string) ([]Outlet, error)

	// Save creates or updates an outlet
	Save(ctx context.Context, outlet *Outlet) error
}

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByID finds a menu item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindByOutlet finds all menu items for an outlet, newest first
	FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]MenuItem, error)

	// Insert persists a newly created menu item
	Insert(ctx context.Context, item *MenuItem) error

	// Update persists changes to an existing menu item
	Update(ctx context.Context, item *MenuItem) error

	// Delete removes a menu item; the inventory row cascades
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	// FindByMenuItem finds the inventory row for a menu item
	FindByMenuItem(ctx context.Context, menuItemID uuid.UUID) (*InventoryItem, error)

	// Upsert atomically inserts or overwrites the inventory row keyed on
	// the unique menu_item_id column. Implementations must use a single
	// conflict-resolving store operation, never a read-then-write pair.
	Upsert(ctx context.Context, menuItemID uuid.UUID, quantity int) (*InventoryItem, error)
}
