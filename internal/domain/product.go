package domain

// Product represents a single catalog product as shown in the storefront
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"` // pre-discount price, >= Price when set
	Brand         string  `json:"brand,omitempty"`
	Rating        float64 `json:"rating"` // 0-5
	ReviewCount   int     `json:"reviewCount"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	IsNew         bool    `json:"isNew,omitempty"`
	IsSale        bool    `json:"isSale,omitempty"`
}

// PriceRange represents an inclusive min/max price window
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria holds the active filters for one catalog slice.
// Empty Brands/Ratings sets mean "no restriction".
type FilterCriteria struct {
	Query      string     `json:"query"`
	PriceRange PriceRange `json:"priceRange"`
	Brands     []string   `json:"brands"`
	Ratings    []int      `json:"ratings"` // matched against floor(product rating)
}

// SortKey determines the ordering of a derived product list
type SortKey string

const (
	SortFeatured  SortKey = "featured"   // original catalog order, no reordering
	SortPriceAsc  SortKey = "price-low"  // price ascending
	SortPriceDesc SortKey = "price-high" // price descending
	SortRating    SortKey = "rating"     // rating descending
)

// FilterOptions are the selectable filter values present in a catalog slice.
// They are recomputed whenever the slice changes so stale options from a
// previous category never appear as selectable filters.
type FilterOptions struct {
	Brands     []string   `json:"brands"`
	Ratings    []int      `json:"ratings"`
	PriceRange PriceRange `json:"priceRange"`
}
