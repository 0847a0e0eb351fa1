package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/config"
)

// OutletCacheFactory creates outlet caches based on configuration
type OutletCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// OutletCacheFactoryOption is a functional option for configuring the factory
type OutletCacheFactoryOption func(*OutletCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) OutletCacheFactoryOption {
	return func(f *OutletCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) OutletCacheFactoryOption {
	return func(f *OutletCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewOutletCacheFactory creates a new factory
func NewOutletCacheFactory(cfg config.RedisConfig, opts ...OutletCacheFactoryOption) *OutletCacheFactory {
	f := &OutletCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache tries Redis first and falls back to the in-memory cache if
// Redis is unavailable and fallback is allowed. The cache only absorbs
// reads, so staleness across instances is bounded by the TTL either way.
func (f *OutletCacheFactory) CreateCache() (OutletCache, error) {
	cache, err := NewRedisOutletCache(f.redisConfig, WithCacheLogger(f.logger))
	if err == nil {
		f.logger.Info("using Redis outlet cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for outlet cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory outlet cache",
		zap.Error(err),
	)
	return NewInMemoryOutletCache(), nil
}
