package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/shophub/backend/internal/domain"
)

// FilterService derives displayable product lists from a catalog slice,
// filter criteria and a sort key. All methods are pure functions of their
// inputs; the caller re-invokes Derive whenever any input changes.
type FilterService struct{}

// NewFilterService creates a new filter service
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Derive applies the active filters and sort to a catalog slice.
// Filter order is fixed: text, price, brand, rating, then sort.
// The input slice is never mutated and the result is always a subset of it.
func (s *FilterService) Derive(slice []domain.Product, criteria domain.FilterCriteria, sortKey domain.SortKey) []domain.Product {
	result := make([]domain.Product, 0, len(slice))

	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	brands := toSet(criteria.Brands)
	ratings := toIntSet(criteria.Ratings)

	for _, p := range slice {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if p.Price < criteria.PriceRange.Min || p.Price > criteria.PriceRange.Max {
			continue
		}
		if len(brands) > 0 && !brands[p.Brand] {
			continue
		}
		if len(ratings) > 0 && !ratings[int(math.Floor(p.Rating))] {
			continue
		}
		result = append(result, p)
	}

	// Featured keeps the original catalog order; all other keys use a
	// stable sort so ties retain prior relative order.
	switch sortKey {
	case domain.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case domain.SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}

	return result
}

// OptionsFor computes the selectable filter values present in a catalog
// slice: distinct brands, distinct floor-rating values and the observed
// price range. Options always come from the current slice, never a global
// catalog.
func (s *FilterService) OptionsFor(slice []domain.Product) domain.FilterOptions {
	options := domain.FilterOptions{
		Brands:  []string{},
		Ratings: []int{},
	}
	if len(slice) == 0 {
		return options
	}

	seenBrands := make(map[string]bool)
	seenRatings := make(map[int]bool)
	options.PriceRange = domain.PriceRange{Min: slice[0].Price, Max: slice[0].Price}

	for _, p := range slice {
		if p.Brand != "" && !seenBrands[p.Brand] {
			seenBrands[p.Brand] = true
			options.Brands = append(options.Brands, p.Brand)
		}
		floor := int(math.Floor(p.Rating))
		if !seenRatings[floor] {
			seenRatings[floor] = true
			options.Ratings = append(options.Ratings, floor)
		}
		if p.Price < options.PriceRange.Min {
			options.PriceRange.Min = p.Price
		}
		if p.Price > options.PriceRange.Max {
			options.PriceRange.Max = p.Price
		}
	}

	sort.Strings(options.Brands)
	sort.Ints(options.Ratings)
	return options
}

// DefaultCriteria returns the criteria a freshly mounted page starts from:
// the full observed price range of the slice, no brand or rating
// restriction and an empty query. Resetting filters restores this value;
// the sort key is left untouched by a reset.
func (s *FilterService) DefaultCriteria(slice []domain.Product) domain.FilterCriteria {
	return domain.FilterCriteria{
		PriceRange: s.OptionsFor(slice).PriceRange,
		Brands:     []string{},
		Ratings:    []int{},
	}
}

// ClampPriceRange clamps a requested price window into the observed bounds
// of the slice. Out-of-bounds input is clamped, never rejected.
func (s *FilterService) ClampPriceRange(requested, observed domain.PriceRange) domain.PriceRange {
	clamped := requested
	if clamped.Min < observed.Min {
		clamped.Min = observed.Min
	}
	if clamped.Max > observed.Max {
		clamped.Max = observed.Max
	}
	if clamped.Min > clamped.Max {
		clamped.Min, clamped.Max = clamped.Max, clamped.Min
	}
	return clamped
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func toIntSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
