package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shophub/backend/config"
	httpDelivery "github.com/shophub/backend/internal/delivery/http"
	"github.com/shophub/backend/internal/domain"
	"github.com/shophub/backend/internal/infrastructure/catalog"
	"github.com/shophub/backend/internal/infrastructure/notify"
	"github.com/shophub/backend/internal/infrastructure/state"
	"github.com/shophub/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopHub Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("State store: %s", cfg.State.Type)

	// Initialize infrastructure dependencies
	var stateStore domain.StateStore
	switch cfg.State.Type {
	case "redis":
		redisStore, err := state.NewRedisStore(context.Background(), cfg.State.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		stateStore = redisStore
		log.Printf("Persisted state in Redis at %s", cfg.State.RedisURL)
	default:
		stateStore = state.NewMemoryStore()
	}

	productCatalog := catalog.NewSeededCatalog()
	notifier := notify.NewLogNotifier()

	// Initialize usecase layer
	filterService := usecase.NewFilterService()
	stateService := usecase.NewStateService(stateStore, notifier)
	storefrontService := usecase.NewStorefrontService(productCatalog, filterService, stateService)
	pricingService := usecase.NewPricingService(usecase.PricingConfig{
		ShippingFee:      cfg.Pricing.ShippingFee,
		FreeShippingOver: cfg.Pricing.FreeShippingOver,
		TaxRate:          cfg.Pricing.TaxRate,
	}, notifier)
	checkoutService := usecase.NewCheckoutService(stateService, pricingService, usecase.CheckoutConfig{
		ProcessingDelay: cfg.Checkout.ProcessingDelay,
	}, nil, nil)
	dealsService := usecase.NewDealsService(productCatalog, 0, nil)

	log.Printf("Checkout processing delay: %s", cfg.Checkout.ProcessingDelay)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(storefrontService, stateService, pricingService, checkoutService, dealsService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
