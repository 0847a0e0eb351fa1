package storefront

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/storefront"
)

// errOutletRequired is returned when scope resolution yields no outlet:
// a super admin who omitted the outlet id. Scoped admins always resolve
// to their own outlet.
var errOutletRequired = shared.NewDomainError("BAD_REQUEST", "Outlet id is required")

// MenuService handles menu item reads and admin mutations
type MenuService struct {
	menuRepo storefront.MenuItemRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo storefront.MenuItemRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListByOutlet returns all items for an outlet regardless of availability.
// Filtering unavailable items is a client concern.
func (s *MenuService) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]MenuItemResponse, error) {
	items, err := s.menuRepo.FindByOutlet(ctx, outletID)
	if err != nil {
		return nil, err
	}
	return ToMenuItemResponses(items), nil
}

// AdminList returns the menu for the actor's effective outlet. The
// requested outlet id only matters for super admins; everyone else is
// pinned to their own outlet.
func (s *MenuService) AdminList(ctx context.Context, actor *identity.Actor, requestedOutletID *uuid.UUID) ([]MenuItemResponse, error) {
	outletID := actor.EffectiveOutletID(requestedOutletID)
	if outletID == nil {
		return nil, errOutletRequired
	}

	items, err := s.menuRepo.FindByOutlet(ctx, *outletID)
	if err != nil {
		return nil, err
	}
	return ToMenuItemResponses(items), nil
}

// Create creates a menu item in the actor's effective outlet.
// IsAvailable defaults to true when omitted.
func (s *MenuService) Create(ctx context.Context, actor *identity.Actor, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	outletID := actor.EffectiveOutletID(req.OutletID)
	if outletID == nil {
		return nil, errOutletRequired
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := storefront.NewMenuItem(*outletID, req.Name, req.Description, req.Price, isAvailable)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	resp := ToMenuItemResponse(item)
	return &resp, nil
}

// Update applies a partial update to a menu item. The target is loaded
// first so the ownership check runs against the row's true outlet, not
// anything the client supplied.
func (s *MenuService) Update(ctx context.Context, actor *identity.Actor, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.OwnsOutlet(item.OutletID) {
		return nil, shared.ErrForbidden
	}

	if req.Name != nil {
		if err := item.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		item.SetDescription(req.Description)
	}
	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.IsAvailable != nil {
		item.SetAvailability(*req.IsAvailable)
	}
	item.Touch()

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	resp := ToMenuItemResponse(item)
	return &resp, nil
}

// Delete removes a menu item after the ownership check. The inventory
// row goes with it via the cascade.
func (s *MenuService) Delete(ctx context.Context, actor *identity.Actor, id uuid.UUID) error {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.OwnsOutlet(item.OutletID) {
		return shared.ErrForbidden
	}

	return s.menuRepo.Delete(ctx, id)
}
