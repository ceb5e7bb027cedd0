package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// BaseCurrency is the fixed reporting currency every stored record's
	// reporting amount is expressed in. Process-wide configuration, not
	// mutable state; changing it invalidates stored snapshots.
	BaseCurrency string

	// DefaultDisplayCurrency is used when a request does not name one.
	DefaultDisplayCurrency string

	// RateLimit is the per-IP limit in ulule/limiter formatted notation,
	// e.g. "120-M" for 120 requests per minute.
	RateLimit string

	// AllowedOrigins is the comma-separated CORS origin whitelist.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("DEFAULT_DISPLAY_CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	if len(cfg.BaseCurrency) != 3 {
		return nil, fmt.Errorf("BASE_CURRENCY must be a 3-letter currency code, got %q", cfg.BaseCurrency)
	}

	cfg.DefaultDisplayCurrency = strings.ToUpper(viper.GetString("DEFAULT_DISPLAY_CURRENCY"))
	if len(cfg.DefaultDisplayCurrency) != 3 {
		return nil, fmt.Errorf("DEFAULT_DISPLAY_CURRENCY must be a 3-letter currency code, got %q", cfg.DefaultDisplayCurrency)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}
