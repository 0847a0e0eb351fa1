package cache

import (
	"context"
	"sync"
	"time"

	"github.com/storefront/backend/internal/domain/storefront"
)

type outletCacheEntry struct {
	outlets   []storefront.Outlet
	expiresAt time.Time
}

// InMemoryOutletCache implements OutletCache with a process-local map.
// State is not shared across instances; it backs single-node deployments
// and serves as the fallback when Redis is unreachable.
type InMemoryOutletCache struct {
	mu      sync.RWMutex
	entries map[string]outletCacheEntry
}

// NewInMemoryOutletCache creates a new in-memory outlet cache
func NewInMemoryOutletCache() *InMemoryOutletCache {
	return &InMemoryOutletCache{
		entries: make(map[string]outletCacheEntry),
	}
}

// GetByPincode returns the cached outlets for a pincode, expiring lazily
func (c *InMemoryOutletCache) GetByPincode(_ context.Context, pincode string) ([]storefront.Outlet, error) {
	c.mu.RLock()
	entry, ok := c.entries[pincode]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, pincode)
		c.mu.Unlock()
		return nil, nil
	}

	// Copy so callers cannot mutate the cached slice
	outlets := make([]storefront.Outlet, len(entry.outlets))
	copy(outlets, entry.outlets)
	return outlets, nil
}

// SetByPincode stores the outlets for a pincode
func (c *InMemoryOutletCache) SetByPincode(_ context.Context, pincode string, outlets []storefront.Outlet, ttl time.Duration) error {
	stored := make([]storefront.Outlet, len(outlets))
	copy(stored, outlets)

	c.mu.Lock()
	c.entries[pincode] = outletCacheEntry{
		outlets:   stored,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Invalidate drops the cached entry for a pincode
func (c *InMemoryOutletCache) Invalidate(_ context.Context, pincode string) error {
	c.mu.Lock()
	delete(c.entries, pincode)
	c.mu.Unlock()
	return nil
}

// Close releases nothing for the in-memory cache
func (c *InMemoryOutletCache) Close() error {
	return nil
}

// Ensure InMemoryOutletCache implements OutletCache
var _ OutletCache = (*InMemoryOutletCache)(nil)
