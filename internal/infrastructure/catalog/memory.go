package catalog

import (
	"context"

	"github.com/shophub/backend/internal/domain"
)

// MemoryCatalog is the read-only product catalog backing the storefront.
// Products are fixed at construction; lookups return copies so callers
// can never mutate catalog state.
type MemoryCatalog struct {
	products []domain.Product
	byID     map[string]int
}

// NewMemoryCatalog creates a catalog from a fixed product list. Order is
// preserved; it is the "featured" order pages render by default.
func NewMemoryCatalog(products []domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// NewSeededCatalog creates a catalog loaded with the demo storefront
// products
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedProducts)
}

// All returns every product in featured order
func (c *MemoryCatalog) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// ByCategory returns the products in a category, in featured order.
// An unknown category yields an empty slice, not an error.
func (c *MemoryCatalog) ByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

// ByID returns a single product or ErrProductNotFound
func (c *MemoryCatalog) ByID(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	product := c.products[i]
	return &product, nil
}
