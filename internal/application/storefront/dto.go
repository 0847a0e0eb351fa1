package storefront

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/storefront"
)

// CreateMenuItemRequest represents a request to create a menu item.
// OutletID is advisory: scope resolution decides which outlet the item
// lands in, and a scoped admin's own outlet always wins.
type CreateMenuItemRequest struct {
	OutletID    *uuid.UUID `json:"outletId"`
	Name        string     `json:"name" binding:"required,min=2,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Price       string     `json:"price" binding:"required,price"`
	IsAvailable *bool      `json:"isAvailable"`
}

// UpdateMenuItemRequest represents a partial update. Absent fields keep
// their existing values; present fields overwrite.
type UpdateMenuItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Price       *string `json:"price" binding:"omitempty,price"`
	IsAvailable *bool   `json:"isAvailable"`
}

// SetInventoryRequest represents an inventory write. Quantity is a pointer
// so zero survives the required check.
type SetInventoryRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// OutletResponse is the public wire shape of an outlet
type OutletResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address *string   `json:"address"`
	Pincode string    `json:"pincode"`
}

// MenuItemResponse is the wire shape of a menu item
type MenuItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OutletID    uuid.UUID `json:"outletId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InventoryResponse is the wire shape of an inventory row
type InventoryResponse struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToOutletResponse converts a domain Outlet to OutletResponse
func ToOutletResponse(o *storefront.Outlet) OutletResponse {
	return OutletResponse{
		ID:      o.ID,
		Name:    o.Name,
		Address: o.Address,
		Pincode: o.Pincode,
	}
}

// ToOutletResponses converts a slice of domain Outlets to OutletResponses
func ToOutletResponses(outlets []storefront.Outlet) []OutletResponse {
	responses := make([]OutletResponse, len(outlets))
	for i := range outlets {
		responses[i] = ToOutletResponse(&outlets[i])
	}
	return responses
}

// ToMenuItemResponse converts a domain MenuItem to MenuItemResponse
func ToMenuItemResponse(m *storefront.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		OutletID:    m.OutletID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.PriceString(),
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMenuItemResponses converts a slice of domain MenuItems to MenuItemResponses
func ToMenuItemResponses(items []storefront.MenuItem) []MenuItemResponse {
	responses := make([]MenuItemResponse, len(items))
	for i := range items {
		responses[i] = ToMenuItemResponse(&items[i])
	}
	return responses
}

// ToInventoryResponse converts a domain InventoryItem to InventoryResponse
func ToInventoryResponse(item *storefront.InventoryItem) InventoryResponse {
	return InventoryResponse{
		MenuItemID: item.MenuItemID,
		Quantity:   item.Quantity,
		UpdatedAt:  item.UpdatedAt,
	}
}
