package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	State     StateConfig
	Pricing   PricingConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StateConfig holds persisted client state configuration
type StateConfig struct {
	Type     string `mapstructure:"type"` // "memory" or "redis"
	RedisURL string `mapstructure:"redis_url"`
}

// PricingConfig holds the cart pricing rules
type PricingConfig struct {
	ShippingFee      float64 `mapstructure:"shipping_fee"`
	FreeShippingOver float64 `mapstructure:"free_shipping_over"`
	TaxRate          float64 `mapstructure:"tax_rate"`
}

// CheckoutConfig holds mock checkout configuration
type CheckoutConfig struct {
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shophub/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// State store defaults
	v.SetDefault("state.type", "memory")
	v.SetDefault("state.redis_url", "")

	// Pricing defaults
	v.SetDefault("pricing.shipping_fee", 10.0)
	v.SetDefault("pricing.free_shipping_over", 100.0)
	v.SetDefault("pricing.tax_rate", 0.10)

	// Checkout defaults
	v.SetDefault("checkout.processing_delay", "2s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.State.Type != "memory" && config.State.Type != "redis" {
		return fmt.Errorf("state type must be 'memory' or 'redis', got: %s", config.State.Type)
	}

	if config.State.Type == "redis" && config.State.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when state type is 'redis'")
	}

	if config.Pricing.TaxRate < 0 || config.Pricing.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be in [0, 1), got: %v", config.Pricing.TaxRate)
	}

	if config.Checkout.ProcessingDelay < 0 {
		return fmt.Errorf("checkout processing delay cannot be negative")
	}

	return nil
}
