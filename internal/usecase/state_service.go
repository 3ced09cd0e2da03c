package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shophub/backend/internal/domain"
)

// StateService owns the persisted client state (cart, wishlist,
// recently-viewed, user session) and keeps independently mounted views
// consistent with each other. Every mutation reads the full collection,
// applies the change, writes it back and synchronously notifies all
// subscribers, who re-read whatever keys they care about. Concurrent
// writers from separate processes are last-writer-wins; that is accepted
// for a single-user store.
type StateService struct {
	store    domain.StateStore
	notifier domain.Notifier

	mu          sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// NewStateService creates a state sync service on top of a state store
func NewStateService(store domain.StateStore, notifier domain.Notifier) *StateService {
	return &StateService{
		store:       store,
		notifier:    notifier,
		subscribers: make(map[int]func()),
	}
}

// Subscribe registers a callback invoked after every mutation. The
// callback carries no payload; subscribers re-read the keys they depend
// on. The returned function removes the subscription.
func (s *StateService) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// broadcast synchronously notifies all current subscribers. Callers must
// not hold s.mu.
func (s *StateService) broadcast() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Cart returns the current cart lines. A missing or corrupted value
// yields an empty cart, never an error.
func (s *StateService) Cart(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := s.read(ctx, domain.StateKeyCart, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

// AddToCart adds qty of a product to the cart. If a line for the product
// already exists its quantity is incremented; the denormalized name,
// price and image on the existing line are left as first written.
func (s *StateService) AddToCart(ctx context.Context, productID, name string, price float64, image string, qty int) ([]domain.CartLine, error) {
	if productID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if qty < 1 {
		qty = 1
	}

	lines, err := s.Cart(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{
			ProductID: productID,
			Name:      name,
			Price:     price,
			Image:     image,
			Quantity:  qty,
		})
	}

	if err := s.write(ctx, domain.StateKeyCart, lines); err != nil {
		return nil, err
	}
	s.broadcast()
	return lines, nil
}

// UpdateQuantity adjusts a cart line quantity by delta, clamped at a
// minimum of 1. The line is never removed here even if the computed
// quantity would reach zero; removal is only done by RemoveFromCart.
func (s *StateService) UpdateQuantity(ctx context.Context, productID string, delta int) ([]domain.CartLine, error) {
	lines, err := s.Cart(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			next := lines[i].Quantity + delta
			if next < 1 {
				next = 1
			}
			lines[i].Quantity = next
			break
		}
	}

	if err := s.write(ctx, domain.StateKeyCart, lines); err != nil {
		return nil, err
	}
	s.broadcast()
	return lines, nil
}

// RemoveFromCart removes the line for a product entirely
func (s *StateService) RemoveFromCart(ctx context.Context, productID string) ([]domain.CartLine, error) {
	lines, err := s.Cart(ctx)
	if err != nil {
		return nil, err
	}

	updated := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			updated = append(updated, line)
		}
	}

	if err := s.write(ctx, domain.StateKeyCart, updated); err != nil {
		return nil, err
	}
	s.notifier.Notify("Item removed", "The item has been removed from your cart")
	s.broadcast()
	return updated, nil
}

// ClearCart empties the cart, used after a completed checkout
func (s *StateService) ClearCart(ctx context.Context) error {
	if err := s.write(ctx, domain.StateKeyCart, []domain.CartLine{}); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// Wishlist returns the wishlisted product ids
func (s *StateService) Wishlist(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.read(ctx, domain.StateKeyWishlist, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleWishlist adds the product id if absent and removes it if present.
// Returns true when the product ended up on the wishlist.
func (s *StateService) ToggleWishlist(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, domain.ErrInvalidRequest
	}

	ids, err := s.Wishlist(ctx)
	if err != nil {
		return false, err
	}

	added := true
	updated := ids[:0]
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		updated = append(updated, id)
	}
	if added {
		updated = append(updated, productID)
	}

	if err := s.write(ctx, domain.StateKeyWishlist, updated); err != nil {
		return false, err
	}

	if added {
		s.notifier.Notify("Added to wishlist", "The product has been added to your wishlist.")
	} else {
		s.notifier.Notify("Removed from wishlist", "The product has been removed from your wishlist.")
	}
	s.broadcast()
	return added, nil
}

// RecentlyViewed returns the recently viewed product snapshots,
// most recent first
func (s *StateService) RecentlyViewed(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.read(ctx, domain.StateKeyRecentlyViewed, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// RecordView records a product view: any existing entry for the same id
// moves to the front rather than duplicating, and the list is truncated
// to the most recent entries.
func (s *StateService) RecordView(ctx context.Context, product domain.Product) error {
	if product.ID == "" {
		return domain.ErrInvalidRequest
	}

	products, err := s.RecentlyViewed(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.Product, 0, len(products)+1)
	updated = append(updated, product)
	for _, p := range products {
		if p.ID != product.ID {
			updated = append(updated, p)
		}
	}
	if len(updated) > domain.RecentlyViewedLimit {
		updated = updated[:domain.RecentlyViewedLimit]
	}

	if err := s.write(ctx, domain.StateKeyRecentlyViewed, updated); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// CurrentUser returns the logged-in mock user, or nil when logged out
func (s *StateService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user *domain.User
	if err := s.read(ctx, domain.StateKeyUserSession, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUser records the mock authenticated user
func (s *StateService) SetUser(ctx context.Context, user domain.User) error {
	if err := s.write(ctx, domain.StateKeyUserSession, &user); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// ClearUser logs the mock user out
func (s *StateService) ClearUser(ctx context.Context) error {
	if err := s.write(ctx, domain.StateKeyUserSession, nil); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// read loads and decodes a state key into out. A missing key leaves out
// at its zero value; a value that fails to decode is treated the same
// way, so a corrupted store degrades to empty defaults instead of
// failing the caller.
func (s *StateService) read(ctx context.Context, key string, out interface{}) error {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("%w: %v", domain.ErrStateUnavailable, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupted value, fall back to the empty default
		return nil
	}
	return nil
}

func (s *StateService) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStateUnavailable, err)
	}
	return nil
}
