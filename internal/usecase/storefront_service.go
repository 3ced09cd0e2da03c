package usecase

import (
	"context"
	"fmt"

	"github.com/shophub/backend/internal/domain"
)

// BrowseRequest describes one catalog page view: the slice to browse and
// the filter/sort inputs coming from the page controls. Nil price bounds
// mean "not restricted" and fall back to the slice's observed range.
type BrowseRequest struct {
	Category string
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Brands   []string
	Ratings  []int
	Sort     domain.SortKey
}

// BrowseResult is the derived page state: the filtered product list, the
// selectable filter options for the slice and the effective criteria
// after defaulting and clamping.
type BrowseResult struct {
	Products []domain.Product      `json:"products"`
	Options  domain.FilterOptions  `json:"options"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Total    int                   `json:"total"`
}

// StorefrontService answers the catalog-facing page requests: category
// and search listings through the filter engine, product detail with
// view recording, and wishlist resolution against the catalog.
type StorefrontService struct {
	catalog domain.Catalog
	filter  *FilterService
	state   *StateService
}

// NewStorefrontService creates a storefront service
func NewStorefrontService(catalog domain.Catalog, filter *FilterService, state *StateService) *StorefrontService {
	return &StorefrontService{
		catalog: catalog,
		filter:  filter,
		state:   state,
	}
}

// Browse derives the product list for a category or search page. An
// unknown category yields an empty page, not an error.
func (s *StorefrontService) Browse(ctx context.Context, req BrowseRequest) (*BrowseResult, error) {
	var slice []domain.Product
	var err error
	if req.Category == "" {
		slice, err = s.catalog.All(ctx)
	} else {
		slice, err = s.catalog.ByCategory(ctx, req.Category)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog slice: %w", err)
	}

	options := s.filter.OptionsFor(slice)
	criteria := s.filter.DefaultCriteria(slice)
	criteria.Query = req.Query
	criteria.Brands = req.Brands
	criteria.Ratings = req.Ratings

	// Price bounds from the page controls are clamped into the observed
	// range of the slice, never rejected
	requested := criteria.PriceRange
	if req.MinPrice != nil {
		requested.Min = *req.MinPrice
	}
	if req.MaxPrice != nil {
		requested.Max = *req.MaxPrice
	}
	criteria.PriceRange = s.filter.ClampPriceRange(requested, options.PriceRange)

	products := s.filter.Derive(slice, criteria, req.Sort)

	return &BrowseResult{
		Products: products,
		Options:  options,
		Criteria: criteria,
		Total:    len(products),
	}, nil
}

// FilterOptions returns the selectable filter values for a category
// slice, for rendering the filter sidebar
func (s *StorefrontService) FilterOptions(ctx context.Context, category string) (*domain.FilterOptions, error) {
	var slice []domain.Product
	var err error
	if category == "" {
		slice, err = s.catalog.All(ctx)
	} else {
		slice, err = s.catalog.ByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	options := s.filter.OptionsFor(slice)
	return &options, nil
}

// Lookup returns a single product without recording a view, for flows
// like add-to-cart that reference a product without visiting its page
func (s *StorefrontService) Lookup(ctx context.Context, id string) (*domain.Product, error) {
	return s.catalog.ByID(ctx, id)
}

// Product returns a single product and records the view in the
// recently-viewed list
func (s *StorefrontService) Product(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.catalog.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.state.RecordView(ctx, *product); err != nil {
		// A failed view recording must not fail the product page
		return product, nil
	}
	return product, nil
}

// WishlistProducts resolves the wishlisted ids against the catalog.
// Ids whose product no longer exists are dropped silently.
func (s *StorefrontService) WishlistProducts(ctx context.Context) ([]domain.Product, error) {
	ids, err := s.state.Wishlist(ctx)
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}
	for _, id := range ids {
		product, err := s.catalog.ByID(ctx, id)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}
