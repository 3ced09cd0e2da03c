package usecase

import (
	"strings"

	"github.com/shophub/backend/internal/domain"
)

// PricingConfig holds the cart pricing rules
type PricingConfig struct {
	ShippingFee      float64
	FreeShippingOver float64
	TaxRate          float64
}

// Coupon codes accepted by the mock store and their discount percentages
var couponDiscounts = map[string]int{
	"discount10": 10,
	"discount20": 20,
}

// PricingService computes cart totals and resolves coupon codes
type PricingService struct {
	shippingFee      float64
	freeShippingOver float64
	taxRate          float64
	notifier         domain.Notifier
}

// NewPricingService creates a pricing service with the given rules
func NewPricingService(config PricingConfig, notifier domain.Notifier) *PricingService {
	shippingFee := config.ShippingFee
	if shippingFee == 0 {
		shippingFee = 10.0
	}
	freeOver := config.FreeShippingOver
	if freeOver == 0 {
		freeOver = 100.0
	}
	taxRate := config.TaxRate
	if taxRate == 0 {
		taxRate = 0.10
	}

	return &PricingService{
		shippingFee:      shippingFee,
		freeShippingOver: freeOver,
		taxRate:          taxRate,
		notifier:         notifier,
	}
}

// ResolveCoupon maps a coupon code to its discount percentage. Codes are
// case-insensitive. An unknown code reports through the notifier and
// yields zero discount; it is not an error.
func (s *PricingService) ResolveCoupon(code string) int {
	if code == "" {
		return 0
	}

	discount, ok := couponDiscounts[strings.ToLower(code)]
	if !ok {
		s.notifier.Notify("Invalid coupon", "The coupon code you entered is invalid")
		return 0
	}

	s.notifier.Notify("Coupon applied", "Your discount has been applied to the order")
	return discount
}

// Totals computes the price breakdown for a set of cart lines.
// Shipping is waived above the free-shipping threshold and tax applies
// to the discounted subtotal.
func (s *PricingService) Totals(lines []domain.CartLine, discountPercent int) domain.CartTotals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	shipping := s.shippingFee
	if subtotal > s.freeShippingOver || len(lines) == 0 {
		shipping = 0
	}

	discountAmount := subtotal * float64(discountPercent) / 100
	tax := (subtotal - discountAmount) * s.taxRate

	return domain.CartTotals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Shipping:        shipping,
		Tax:             tax,
		Total:           subtotal - discountAmount + shipping + tax,
	}
}
