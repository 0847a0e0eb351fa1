package cache

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/storefront"
)

// OutletCache caches outlet discovery results keyed by pincode. The outlet
// listing is by far the hottest read path and its contents change rarely,
// so a short TTL absorbs most of the load without a coherence protocol.
type OutletCache interface {
	// GetByPincode returns the cached outlets for a pincode.
	// A cache miss returns (nil, nil).
	GetByPincode(ctx context.Context, pincode string) ([]storefront.Outlet, error)

	// SetByPincode stores the outlets for a pincode with the given TTL
	SetByPincode(ctx context.Context, pincode string, outlets []storefront.Outlet, ttl time.Duration) error

	// Invalidate drops the cached entry for a pincode
	Invalidate(ctx context.Context, pincode string) error

	// Close releases any resources held by the cache
	Close() error
}
