package domain

import "time"

// CartLine is one line of the shopping cart. Name, Price and Image are
// copied from the catalog at add time and are not refreshed on later
// additions of the same product (first write wins).
type CartLine struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"` // always >= 1
}

// RecentlyViewedLimit caps the recently-viewed list to the most recent
// distinct products.
const RecentlyViewedLimit = 6

// CartTotals is the price breakdown shown on the cart and checkout pages
type CartTotals struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent int     `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	Shipping        float64 `json:"shipping"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
}

// Order is the confirmation record produced by the mock checkout
type Order struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"` // human-facing, e.g. "ORD-48213"
	Lines    []CartLine `json:"lines"`
	Totals   CartTotals `json:"totals"`
	PlacedAt time.Time  `json:"placedAt"`
}

// User is the mock authenticated user kept in the session key
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// FlashDeal is a time-limited discounted product
type FlashDeal struct {
	Product Product   `json:"product"`
	EndTime time.Time `json:"endTime"`
	Sold    int       `json:"sold"`
	Stock   int       `json:"stock"`
}
