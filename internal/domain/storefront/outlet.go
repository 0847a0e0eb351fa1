package storefront

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// Outlet represents a physical storefront location. Each outlet owns its
// menu items; its identity is immutable once created.
type Outlet struct {
	shared.BaseEntity
	Name    string  `gorm:"type:varchar(200);not null"`
	Address *string `gorm:"type:text"`
	Pincode string  `gorm:"type:varchar(10);not null;index:idx_outlet_pincode"`
}

// TableName returns the table name for GORM
func (Outlet) TableName() string {
	return "outlets"
}

// NewOutlet creates a new outlet
func NewOutlet(name, pincode string, address *string) (*Outlet, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Outlet name cannot be empty")
	}
	if pincode == "" {
		return nil, shared.NewDomainError("INVALID_PINCODE", "Pincode cannot be empty")
	}

	return &Outlet{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Pincode:    pincode,
	}, nil
}
