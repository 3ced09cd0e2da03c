package domain

import "context"

// State keys used in the persisted client state store
const (
	StateKeyCart           = "cart"
	StateKeyWishlist       = "wishlist"
	StateKeyRecentlyViewed = "recently-viewed"
	StateKeyUserSession    = "user-session"
)

// Catalog defines the read-only product catalog the storefront browses
type Catalog interface {
	All(ctx context.Context) ([]Product, error)
	ByCategory(ctx context.Context, slug string) ([]Product, error)
	ByID(ctx context.Context, id string) (*Product, error)
}

// StateStore is the persisted client state port: a flat key-value store
// holding JSON-encoded collections that survive restarts. Get returns
// ErrKeyNotFound for keys that were never written.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Notifier receives fire-and-forget user-facing messages (toasts).
// Delivery is best effort; implementations must not fail the caller.
type Notifier interface {
	Notify(title, message string)
}
