package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shophub/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", handler.ListProducts)
		v1.GET("/products/:id", handler.GetProduct)
		v1.GET("/categories/:slug/products", handler.CategoryProducts)
		v1.GET("/categories/:slug/filters", handler.CategoryFilters)

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.AddCartItem)
			cart.PATCH("/items/:id", handler.UpdateCartItem)
			cart.DELETE("/items/:id", handler.RemoveCartItem)
			cart.POST("/coupon", handler.ApplyCoupon)
		}

		v1.GET("/wishlist", handler.GetWishlist)
		v1.POST("/wishlist/:id", handler.ToggleWishlist)

		v1.GET("/recently-viewed", handler.GetRecentlyViewed)

		v1.POST("/checkout", handler.Checkout)

		v1.GET("/deals", handler.GetDeals)
	}

	return router
}
