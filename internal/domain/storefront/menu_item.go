package storefront

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// pricePattern is the only accepted wire format for prices: a fixed-point
// decimal string with at most two fractional digits. Prices are never
// handled as binary floats.
var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// MenuItem represents a sellable item on an outlet's menu. An item belongs
// to exactly one outlet for its entire lifetime; reassignment is not
// supported.
type MenuItem struct {
	shared.BaseEntity
	OutletID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_menu_item_outlet"`
	Outlet      *Outlet         `gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsAvailable bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// ParsePrice validates and parses a fixed-point price string
func ParsePrice(raw string) (decimal.Decimal, error) {
	if !pricePattern.MatchString(raw) {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal string with at most two fractional digits")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal string with at most two fractional digits")
	}
	return price, nil
}

// NewMenuItem creates a new menu item for an outlet
func NewMenuItem(outletID uuid.UUID, name string, description *string, price string, isAvailable bool) (*MenuItem, error) {
	if outletID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OUTLET", "Outlet ID cannot be empty")
	}
	if err := validateMenuItemName(name); err != nil {
		return nil, err
	}
	parsed, err := ParsePrice(price)
	if err != nil {
		return nil, err
	}

	return &MenuItem{
		BaseEntity:  shared.NewBaseEntity(),
		OutletID:    outletID,
		Name:        name,
		Description: description,
		Price:       parsed,
		IsAvailable: isAvailable,
	}, nil
}

// Rename updates the item's name
func (m *MenuItem) Rename(name string) error {
	if err := validateMenuItemName(name); err != nil {
		return err
	}
	m.Name = name
	m.Touch()
	return nil
}

// SetDescription updates the item's description
func (m *MenuItem) SetDescription(description *string) {
	m.Description = description
	m.Touch()
}

// SetPrice updates the item's price from its wire representation
func (m *MenuItem) SetPrice(price string) error {
	parsed, err := ParsePrice(price)
	if err != nil {
		return err
	}
	m.Price = parsed
	m.Touch()
	return nil
}

// SetAvailability updates whether the item can currently be ordered
func (m *MenuItem) SetAvailability(available bool) {
	m.IsAvailable = available
	m.Touch()
}

// PriceString returns the price in its wire format, always with two
// fractional digits.
func (m *MenuItem) PriceString() string {
	return m.Price.StringFixed(2)
}

// validateMenuItemName validates the menu item name
func validateMenuItemName(name string) error {
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Menu item name must be at least 2 characters")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Menu item name cannot exceed 200 characters")
	}
	return nil
}
