package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/storefront"
)

// GormOutletRepository implements OutletRepository using GORM
type GormOutletRepository struct {
	db *gorm.DB
}

// NewGormOutletRepository creates a new GormOutletRepository
func NewGormOutletRepository(db *gorm.DB) *GormOutletRepository {
	return &GormOutletRepository{db: db}
}

// FindByID finds an outlet by its ID
func (r *GormOutletRepository) FindByID(ctx context.Context, id uuid.UUID) (*storefront.Outlet, error) {
	var outlet storefront.Outlet
	if err := r.db.WithContext(ctx).First(&outlet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &outlet, nil
}

// FindByPincode finds all outlets with an exact pincode match, newest first
func (r *GormOutletRepository) FindByPincode(ctx context.Context, pincode string) ([]storefront.Outlet, error) {
	var outlets []storefront.Outlet
	if err := r.db.WithContext(ctx).
		Where("pincode = ?", pincode).
		Order("created_at DESC").
		Find(&outlets).Error; err != nil {
		return nil, err
	}
	return outlets, nil
}

// Save creates or updates an outlet
func (r *GormOutletRepository) Save(ctx context.Context, outlet *storefront.Outlet) error {
	return r.db.WithContext(ctx).Save(outlet).Error
}

// Ensure GormOutletRepository implements OutletRepository
var _ storefront.OutletRepository = (*GormOutletRepository)(nil)
