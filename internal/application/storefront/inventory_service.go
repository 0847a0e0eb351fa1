package storefront

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/storefront"
)

// InventoryService handles the inventory write path
type InventoryService struct {
	menuRepo      storefront.MenuItemRepository
	inventoryRepo storefront.InventoryRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(menuRepo storefront.MenuItemRepository, inventoryRepo storefront.InventoryRepository) *InventoryService {
	return &InventoryService{
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Set overwrites the stock counter for a menu item. The menu item is
// loaded first for the ownership check; the write itself is a single
// atomic upsert, so concurrent calls settle on whichever commit ordered
// last instead of losing one.
func (s *InventoryService) Set(ctx context.Context, actor *identity.Actor, menuItemID uuid.UUID, quantity int) (*InventoryResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	if !actor.OwnsOutlet(item.OutletID) {
		return nil, shared.ErrForbidden
	}

	row, err := s.inventoryRepo.Upsert(ctx, menuItemID, quantity)
	if err != nil {
		return nil, err
	}

	resp := ToInventoryResponse(row)
	return &resp, nil
}
