package usecase

import (
	"reflect"
	"testing"

	"github.com/shophub/backend/internal/domain"
)

func testSlice() []domain.Product {
	return []domain.Product{
		{ID: "a", Name: "Wireless Headphones", Price: 10, Brand: "SoundWave", Rating: 4.7},
		{ID: "b", Name: "Bluetooth Speaker", Price: 20, Brand: "SoundWave", Rating: 4.2},
		{ID: "c", Name: "Gaming Keyboard", Price: 30, Brand: "KeyForge", Rating: 4.8},
		{ID: "d", Name: "Fitness Watch", Price: 40, Brand: "TechPro", Rating: 3.9},
		{ID: "e", Name: "Action Camera", Price: 50, Brand: "TechPro", Rating: 4.2},
	}
}

func fullRange(slice []domain.Product) domain.FilterCriteria {
	return domain.FilterCriteria{PriceRange: domain.PriceRange{Min: 0, Max: 1000}}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestDerive(t *testing.T) {
	svc := NewFilterService()

	t.Run("empty slice yields empty result", func(t *testing.T) {
		result := svc.Derive(nil, fullRange(nil), domain.SortFeatured)
		if len(result) != 0 {
			t.Errorf("len = %d, want 0", len(result))
		}
	})

	t.Run("featured preserves input order exactly", func(t *testing.T) {
		slice := testSlice()
		result := svc.Derive(slice, fullRange(slice), domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"a", "b", "c", "d", "e"}) {
			t.Errorf("order = %v, want input order", ids(result))
		}
	})

	t.Run("price window keeps products in range in original order", func(t *testing.T) {
		// Prices [10,20,30,40,50], window [15,35] -> 20 and 30
		slice := testSlice()
		criteria := domain.FilterCriteria{PriceRange: domain.PriceRange{Min: 15, Max: 35}}
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"b", "c"}) {
			t.Errorf("ids = %v, want [b c]", ids(result))
		}
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		slice := testSlice()
		criteria := domain.FilterCriteria{PriceRange: domain.PriceRange{Min: 20, Max: 40}}
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"b", "c", "d"}) {
			t.Errorf("ids = %v, want [b c d]", ids(result))
		}
	})

	t.Run("window outside catalog bounds yields empty result", func(t *testing.T) {
		slice := testSlice()
		criteria := domain.FilterCriteria{PriceRange: domain.PriceRange{Min: 500, Max: 900}}
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if len(result) != 0 {
			t.Errorf("len = %d, want 0", len(result))
		}
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		slice := testSlice()
		criteria := fullRange(slice)
		criteria.Query = "KEYBOARD"
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"c"}) {
			t.Errorf("ids = %v, want [c]", ids(result))
		}
	})

	t.Run("empty brand set means no restriction", func(t *testing.T) {
		slice := testSlice()
		result := svc.Derive(slice, fullRange(slice), domain.SortFeatured)
		if len(result) != len(slice) {
			t.Errorf("len = %d, want %d", len(result), len(slice))
		}
	})

	t.Run("brand set keeps only member brands", func(t *testing.T) {
		slice := testSlice()
		criteria := fullRange(slice)
		criteria.Brands = []string{"TechPro"}
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"d", "e"}) {
			t.Errorf("ids = %v, want [d e]", ids(result))
		}
	})

	t.Run("rating set matches floor of rating", func(t *testing.T) {
		slice := testSlice()
		criteria := fullRange(slice)
		criteria.Ratings = []int{3}
		result := svc.Derive(slice, criteria, domain.SortFeatured)
		if !reflect.DeepEqual(ids(result), []string{"d"}) {
			t.Errorf("ids = %v, want [d] (rating 3.9 floors to 3)", ids(result))
		}
	})

	t.Run("price ascending sorts by price", func(t *testing.T) {
		slice := []domain.Product{
			{ID: "x", Name: "X", Price: 30},
			{ID: "y", Name: "Y", Price: 10},
			{ID: "z", Name: "Z", Price: 20},
		}
		result := svc.Derive(slice, fullRange(slice), domain.SortPriceAsc)
		if !reflect.DeepEqual(ids(result), []string{"y", "z", "x"}) {
			t.Errorf("ids = %v, want [y z x]", ids(result))
		}
	})

	t.Run("price descending sorts by price", func(t *testing.T) {
		slice := testSlice()
		result := svc.Derive(slice, fullRange(slice), domain.SortPriceDesc)
		if !reflect.DeepEqual(ids(result), []string{"e", "d", "c", "b", "a"}) {
			t.Errorf("ids = %v", ids(result))
		}
	})

	t.Run("rating sort is stable on ties", func(t *testing.T) {
		// b and e both have rating 4.2; b comes first in the catalog
		slice := testSlice()
		result := svc.Derive(slice, fullRange(slice), domain.SortRating)
		if !reflect.DeepEqual(ids(result), []string{"c", "a", "b", "e", "d"}) {
			t.Errorf("ids = %v, want [c a b e d]", ids(result))
		}
	})

	t.Run("output is always a subset of the input", func(t *testing.T) {
		slice := testSlice()
		criteria := domain.FilterCriteria{
			Query:      "a",
			PriceRange: domain.PriceRange{Min: 5, Max: 45},
			Brands:     []string{"SoundWave", "TechPro"},
			Ratings:    []int{4},
		}
		result := svc.Derive(slice, criteria, domain.SortPriceAsc)

		inSlice := make(map[string]bool)
		for _, p := range slice {
			inSlice[p.ID] = true
		}
		for _, p := range result {
			if !inSlice[p.ID] {
				t.Errorf("fabricated product %s in output", p.ID)
			}
		}
	})

	t.Run("identical inputs yield identical outputs", func(t *testing.T) {
		slice := testSlice()
		criteria := fullRange(slice)
		criteria.Brands = []string{"SoundWave"}

		first := svc.Derive(slice, criteria, domain.SortPriceDesc)
		second := svc.Derive(slice, criteria, domain.SortPriceDesc)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Derive is not deterministic: %v vs %v", ids(first), ids(second))
		}
	})

	t.Run("input slice is not mutated by sorting", func(t *testing.T) {
		slice := testSlice()
		svc.Derive(slice, fullRange(slice), domain.SortPriceDesc)
		if !reflect.DeepEqual(ids(slice), []string{"a", "b", "c", "d", "e"}) {
			t.Errorf("input mutated: %v", ids(slice))
		}
	})
}

func TestOptionsFor(t *testing.T) {
	svc := NewFilterService()

	t.Run("empty slice yields empty options", func(t *testing.T) {
		options := svc.OptionsFor(nil)
		if len(options.Brands) != 0 || len(options.Ratings) != 0 {
			t.Errorf("options = %+v, want empty", options)
		}
	})

	t.Run("collects distinct brands sorted", func(t *testing.T) {
		options := svc.OptionsFor(testSlice())
		if !reflect.DeepEqual(options.Brands, []string{"KeyForge", "SoundWave", "TechPro"}) {
			t.Errorf("brands = %v", options.Brands)
		}
	})

	t.Run("collects distinct floor ratings", func(t *testing.T) {
		options := svc.OptionsFor(testSlice())
		if !reflect.DeepEqual(options.Ratings, []int{3, 4}) {
			t.Errorf("ratings = %v, want [3 4]", options.Ratings)
		}
	})

	t.Run("observes price range of the slice", func(t *testing.T) {
		options := svc.OptionsFor(testSlice())
		if options.PriceRange.Min != 10 || options.PriceRange.Max != 50 {
			t.Errorf("price range = %+v, want [10, 50]", options.PriceRange)
		}
	})

	t.Run("skips empty brands", func(t *testing.T) {
		slice := []domain.Product{
			{ID: "x", Name: "X", Price: 5, Rating: 4},
			{ID: "y", Name: "Y", Price: 5, Brand: "Acme", Rating: 4},
		}
		options := svc.OptionsFor(slice)
		if !reflect.DeepEqual(options.Brands, []string{"Acme"}) {
			t.Errorf("brands = %v, want [Acme]", options.Brands)
		}
	})
}

func TestDefaultCriteria(t *testing.T) {
	svc := NewFilterService()

	slice := testSlice()
	criteria := svc.DefaultCriteria(slice)

	if criteria.PriceRange.Min != 10 || criteria.PriceRange.Max != 50 {
		t.Errorf("price range = %+v, want full observed range", criteria.PriceRange)
	}
	if len(criteria.Brands) != 0 || len(criteria.Ratings) != 0 || criteria.Query != "" {
		t.Errorf("criteria = %+v, want no restrictions", criteria)
	}

	// Default criteria must pass the whole slice through
	result := svc.Derive(slice, criteria, domain.SortFeatured)
	if len(result) != len(slice) {
		t.Errorf("default criteria filtered out %d products", len(slice)-len(result))
	}
}

func TestClampPriceRange(t *testing.T) {
	svc := NewFilterService()
	observed := domain.PriceRange{Min: 10, Max: 50}

	tests := []struct {
		name      string
		requested domain.PriceRange
		want      domain.PriceRange
	}{
		{"inside bounds untouched", domain.PriceRange{Min: 15, Max: 35}, domain.PriceRange{Min: 15, Max: 35}},
		{"below min clamped up", domain.PriceRange{Min: -5, Max: 35}, domain.PriceRange{Min: 10, Max: 35}},
		{"above max clamped down", domain.PriceRange{Min: 15, Max: 9999}, domain.PriceRange{Min: 15, Max: 50}},
		{"both out of bounds", domain.PriceRange{Min: -5, Max: 9999}, domain.PriceRange{Min: 10, Max: 50}},
		{"inverted window normalized", domain.PriceRange{Min: 40, Max: 20}, domain.PriceRange{Min: 20, Max: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ClampPriceRange(tt.requested, observed)
			if got != tt.want {
				t.Errorf("ClampPriceRange(%+v) = %+v, want %+v", tt.requested, got, tt.want)
			}
		})
	}
}
