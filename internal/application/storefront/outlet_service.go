package storefront

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/storefront"
)

// OutletCache is the read-through cache the outlet listing consults.
// A (nil, nil) result is a miss. Implementations live in infrastructure.
type OutletCache interface {
	GetByPincode(ctx context.Context, pincode string) ([]storefront.Outlet, error)
	SetByPincode(ctx context.Context, pincode string, outlets []storefront.Outlet, ttl time.Duration) error
}

// OutletService handles outlet discovery
type OutletService struct {
	outletRepo storefront.OutletRepository
	cache      OutletCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// OutletServiceOption configures an OutletService
type OutletServiceOption func(*OutletService)

// WithOutletCache enables the read-through cache on the listing path
func WithOutletCache(cache OutletCache, ttl time.Duration) OutletServiceOption {
	return func(s *OutletService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithOutletLogger sets the service logger
func WithOutletLogger(logger *zap.Logger) OutletServiceOption {
	return func(s *OutletService) {
		s.logger = logger
	}
}

// NewOutletService creates a new OutletService
func NewOutletService(outletRepo storefront.OutletRepository, opts ...OutletServiceOption) *OutletService {
	s := &OutletService{
		outletRepo: outletRepo,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListByPincode returns all outlets with an exact pincode match, newest
// first. Cache failures degrade to the repository; they never fail the
// request.
func (s *OutletService) ListByPincode(ctx context.Context, pincode string) ([]OutletResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetByPincode(ctx, pincode)
		if err != nil {
			s.logger.Warn("outlet cache read failed",
				zap.String("pincode", pincode),
				zap.Error(err))
		} else if cached != nil {
			return ToOutletResponses(cached), nil
		}
	}

	outlets, err := s.outletRepo.FindByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetByPincode(ctx, pincode, outlets, s.cacheTTL); err != nil {
			s.logger.Warn("outlet cache write failed",
				zap.String("pincode", pincode),
				zap.Error(err))
		}
	}

	return ToOutletResponses(outlets), nil
}
