package usecase

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shophub/backend/internal/domain"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{5}$`)

func newCheckoutFixture(sleep func(time.Duration)) (*CheckoutService, *StateService) {
	state, _, _ := newStateService()
	pricing, _ := newPricingService()
	fixedNow := func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return NewCheckoutService(state, pricing, CheckoutConfig{ProcessingDelay: 2 * time.Second}, sleep, fixedNow), state
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc, _ := newCheckoutFixture(func(time.Duration) {})
		_, err := svc.PlaceOrder(ctx, "")
		if !errors.Is(err, domain.ErrEmptyCart) {
			t.Errorf("error = %v, want ErrEmptyCart", err)
		}
	})

	t.Run("produces a confirmation order and clears the cart", func(t *testing.T) {
		var slept time.Duration
		svc, state := newCheckoutFixture(func(d time.Duration) { slept = d })

		state.AddToCart(ctx, "1", "Headphones", 50, "", 2)

		order, err := svc.PlaceOrder(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if slept != 2*time.Second {
			t.Errorf("processing delay = %v, want 2s", slept)
		}
		if order.ID == "" {
			t.Errorf("order id is empty")
		}
		if !orderNumberPattern.MatchString(order.Number) {
			t.Errorf("order number = %q, want ORD-NNNNN", order.Number)
		}
		if len(order.Lines) != 1 || order.Lines[0].Quantity != 2 {
			t.Errorf("lines = %+v", order.Lines)
		}
		if order.Totals.Subtotal != 100 {
			t.Errorf("subtotal = %v, want 100", order.Totals.Subtotal)
		}
		if order.PlacedAt.IsZero() {
			t.Errorf("placedAt is zero")
		}

		lines, _ := state.Cart(ctx)
		if len(lines) != 0 {
			t.Errorf("cart = %+v, want cleared after checkout", lines)
		}
	})

	t.Run("applies the coupon to the order totals", func(t *testing.T) {
		svc, state := newCheckoutFixture(func(time.Duration) {})
		state.AddToCart(ctx, "1", "X", 200, "", 1)

		order, err := svc.PlaceOrder(ctx, "discount10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Totals.DiscountPercent != 10 {
			t.Errorf("discount = %d, want 10", order.Totals.DiscountPercent)
		}
	})

	t.Run("rejects a duplicate submission while processing", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		svc, state := newCheckoutFixture(func(time.Duration) {
			close(started)
			<-release
		})
		state.AddToCart(ctx, "1", "X", 10, "", 1)

		var wg sync.WaitGroup
		wg.Add(1)
		var firstErr error
		go func() {
			defer wg.Done()
			_, firstErr = svc.PlaceOrder(ctx, "")
		}()

		<-started
		_, secondErr := svc.PlaceOrder(ctx, "")
		if !errors.Is(secondErr, domain.ErrCheckoutInFlight) {
			t.Errorf("second submission error = %v, want ErrCheckoutInFlight", secondErr)
		}

		close(release)
		wg.Wait()
		if firstErr != nil {
			t.Errorf("first submission error = %v, want nil", firstErr)
		}
	})

	t.Run("accepts a new order after the previous one completes", func(t *testing.T) {
		svc, state := newCheckoutFixture(func(time.Duration) {})

		state.AddToCart(ctx, "1", "X", 10, "", 1)
		if _, err := svc.PlaceOrder(ctx, ""); err != nil {
			t.Fatalf("first order: %v", err)
		}

		state.AddToCart(ctx, "2", "Y", 20, "", 1)
		if _, err := svc.PlaceOrder(ctx, ""); err != nil {
			t.Errorf("second order: %v", err)
		}
	})
}
