package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shophub/backend/internal/domain"
)

// CheckoutConfig holds configuration for the mock checkout flow
type CheckoutConfig struct {
	ProcessingDelay time.Duration
}

// CheckoutService runs the mock checkout: a timed no-op that produces a
// confirmation order from the current cart. Once processing starts it
// cannot be aborted; a second submission while one is in flight is
// rejected so the same cart cannot be ordered twice.
type CheckoutService struct {
	state   *StateService
	pricing *PricingService
	delay   time.Duration
	sleep   func(time.Duration)
	now     func() time.Time

	mu       sync.Mutex
	inFlight bool
}

// NewCheckoutService creates a checkout service. sleep and now are
// injectable for tests; nil selects the real clock.
func NewCheckoutService(state *StateService, pricing *PricingService, config CheckoutConfig, sleep func(time.Duration), now func() time.Time) *CheckoutService {
	delay := config.ProcessingDelay
	if delay == 0 {
		delay = 2 * time.Second
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	if now == nil {
		now = time.Now
	}

	return &CheckoutService{
		state:   state,
		pricing: pricing,
		delay:   delay,
		sleep:   sleep,
		now:     now,
	}
}

// PlaceOrder runs the simulated payment processing and, on completion,
// clears the cart and returns the confirmation order.
func (s *CheckoutService) PlaceOrder(ctx context.Context, couponCode string) (*domain.Order, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	lines, err := s.state.Cart(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	discount := s.pricing.ResolveCoupon(couponCode)

	// Simulated payment processing; not cancellable once started
	s.sleep(s.delay)

	order := &domain.Order{
		ID:       uuid.NewString(),
		Number:   fmt.Sprintf("ORD-%d", 10000+rand.Intn(90000)),
		Lines:    lines,
		Totals:   s.pricing.Totals(lines, discount),
		PlacedAt: s.now(),
	}

	if err := s.state.ClearCart(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
