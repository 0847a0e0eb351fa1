package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/storefront"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// RedisOutletCache implements OutletCache using Redis
type RedisOutletCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	logger     *zap.Logger
}

// RedisOutletCacheOption is a functional option for configuring the cache
type RedisOutletCacheOption func(*RedisOutletCache)

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisOutletCacheOption {
	return func(c *RedisOutletCache) {
		c.logger = logger
	}
}

// NewRedisOutletCache creates a new Redis-based outlet cache
func NewRedisOutletCache(cfg config.RedisConfig, opts ...RedisOutletCacheOption) (*RedisOutletCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisOutletCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisOutletCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisOutletCacheWithClient(client *redis.Client, opts ...RedisOutletCacheOption) *RedisOutletCache {
	cache := &RedisOutletCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// pincodeCacheKey generates the cache key for a pincode listing
func (c *RedisOutletCache) pincodeCacheKey(pincode string) string {
	return fmt.Sprintf("outlets:pincode:%s", pincode)
}

// GetByPincode retrieves the cached outlets for a pincode
func (c *RedisOutletCache) GetByPincode(ctx context.Context, pincode string) ([]storefront.Outlet, error) {
	cacheKey := c.pincodeCacheKey(pincode)

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for outlet listing", zap.String("pincode", pincode))
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Failed to get outlet listing from cache",
			zap.String("pincode", pincode),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get outlets from cache: %w", err)
	}

	var outlets []storefront.Outlet
	if err := json.Unmarshal(data, &outlets); err != nil {
		c.logger.Error("Failed to unmarshal outlet listing",
			zap.String("pincode", pincode),
			zap.Error(err))
		// Drop the corrupted entry
		_ = c.client.Del(ctx, cacheKey)
		return nil, fmt.Errorf("failed to unmarshal outlets: %w", err)
	}

	c.logger.Debug("Cache hit for outlet listing", zap.String("pincode", pincode))
	return outlets, nil
}

// SetByPincode stores the outlets for a pincode
func (c *RedisOutletCache) SetByPincode(ctx context.Context, pincode string, outlets []storefront.Outlet, ttl time.Duration) error {
	cacheKey := c.pincodeCacheKey(pincode)

	data, err := json.Marshal(outlets)
	if err != nil {
		return fmt.Errorf("failed to marshal outlets: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
		c.logger.Error("Failed to set outlet listing in cache",
			zap.String("pincode", pincode),
			zap.Error(err))
		return fmt.Errorf("failed to set outlets in cache: %w", err)
	}

	c.logger.Debug("Cached outlet listing",
		zap.String("pincode", pincode),
		zap.Int("count", len(outlets)),
		zap.Duration("ttl", ttl))
	return nil
}

// Invalidate drops the cached entry for a pincode
func (c *RedisOutletCache) Invalidate(ctx context.Context, pincode string) error {
	cacheKey := c.pincodeCacheKey(pincode)

	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.logger.Error("Failed to invalidate outlet listing",
			zap.String("pincode", pincode),
			zap.Error(err))
		return fmt.Errorf("failed to invalidate outlets in cache: %w", err)
	}

	return nil
}

// Close releases the Redis client if this cache owns it
func (c *RedisOutletCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisOutletCache implements OutletCache
var _ OutletCache = (*RedisOutletCache)(nil)
