package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shophub/backend/internal/domain"
	"github.com/shophub/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	storefront *usecase.StorefrontService
	state      *usecase.StateService
	pricing    *usecase.PricingService
	checkout   *usecase.CheckoutService
	deals      *usecase.DealsService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	storefront *usecase.StorefrontService,
	state *usecase.StateService,
	pricing *usecase.PricingService,
	checkout *usecase.CheckoutService,
	deals *usecase.DealsService,
) *Handler {
	return &Handler{
		storefront: storefront,
		state:      state,
		pricing:    pricing,
		checkout:   checkout,
		deals:      deals,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shophub-backend",
		"version": "1.0.0",
	})
}

// browseRequest parses the filter/sort query params shared by the
// listing endpoints
func browseRequest(c *gin.Context) usecase.BrowseRequest {
	req := usecase.BrowseRequest{
		Category: c.Param("slug"),
		Query:    c.Query("q"),
		Sort:     domain.SortKey(c.DefaultQuery("sort", string(domain.SortFeatured))),
	}

	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MaxPrice = &v
		}
	}
	if raw := c.Query("brands"); raw != "" {
		req.Brands = strings.Split(raw, ",")
	}
	if raw := c.Query("ratings"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				req.Ratings = append(req.Ratings, v)
			}
		}
	}

	return req
}

// ListProducts serves the full catalog with optional filters and sort
func (h *Handler) ListProducts(c *gin.Context) {
	result, err := h.storefront.Browse(c.Request.Context(), browseRequest(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CategoryProducts serves one category slice with optional filters and sort
func (h *Handler) CategoryProducts(c *gin.Context) {
	result, err := h.storefront.Browse(c.Request.Context(), browseRequest(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CategoryFilters serves the selectable filter options for a category
func (h *Handler) CategoryFilters(c *gin.Context) {
	options, err := h.storefront.FilterOptions(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load filter options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetProduct serves a product detail page and records the view
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.storefront.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCart serves the cart lines with their price breakdown
func (h *Handler) GetCart(c *gin.Context) {
	lines, err := h.state.Cart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  lines,
		"totals": h.pricing.Totals(lines, 0),
	})
}

type addCartItemRequest struct {
	ProductID string `json:"id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem adds a product to the cart, denormalizing name, price and
// image from the catalog at add time
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.storefront.Lookup(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	lines, err := h.state.AddToCart(c.Request.Context(), product.ID, product.Name, product.Price, product.Image, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

type updateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateCartItem adjusts a cart line quantity by a delta, clamped at 1
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lines, err := h.state.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

// RemoveCartItem removes a cart line entirely
func (h *Handler) RemoveCartItem(c *gin.Context) {
	lines, err := h.state.RemoveFromCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

type couponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon resolves a coupon code against the current cart and
// returns the discounted totals. An unknown code simply yields zero
// discount.
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lines, err := h.state.Cart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	discount := h.pricing.ResolveCoupon(req.Code)
	c.JSON(http.StatusOK, gin.H{
		"valid":  discount > 0,
		"totals": h.pricing.Totals(lines, discount),
	})
}

// GetWishlist serves the wishlist resolved against the catalog; entries
// for products no longer in the catalog are dropped
func (h *Handler) GetWishlist(c *gin.Context) {
	products, err := h.storefront.WishlistProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": products})
}

// ToggleWishlist adds or removes a product from the wishlist
func (h *Handler) ToggleWishlist(c *gin.Context) {
	added, err := h.state.ToggleWishlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlisted": added})
}

// GetRecentlyViewed serves the recently viewed products, most recent first
func (h *Handler) GetRecentlyViewed(c *gin.Context) {
	products, err := h.state.RecentlyViewed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recently viewed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": products})
}

type checkoutRequest struct {
	CouponCode string `json:"couponCode"`
}

// Checkout runs the mock payment processing and returns the order
// confirmation. The cart is cleared on success.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	_ = c.ShouldBindJSON(&req)

	order, err := h.checkout.PlaceOrder(c.Request.Context(), req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, domain.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "an order is already being processed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetDeals serves the flash deals with their countdown state
func (h *Handler) GetDeals(c *gin.Context) {
	deals, err := h.deals.Deals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals})
}
