package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// CORS
	AllowedOrigins []string

	// Rate limiting, e.g. "100-M" for 100 requests per minute
	RateLimit string

	// Cron spec for the recurring expense materializer
	RecurringCronSpec string

	// Default VAT fraction applied to invoices that omit a rate
	DefaultVATRate decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("RECURRING_CRON_SPEC", "0 6 * * *")
	viper.SetDefault("DEFAULT_VAT_RATE", "0.18")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.RecurringCronSpec = viper.GetString("RECURRING_CRON_SPEC")

	vatStr := viper.GetString("DEFAULT_VAT_RATE")
	vat, err := decimal.NewFromString(vatStr)
	if err != nil {
		vat = decimal.NewFromFloat(0.18)
		log.Printf("Warning: Invalid value for DEFAULT_VAT_RATE ('%s'). Defaulting to %s.\n", vatStr, vat)
	}
	cfg.DefaultVATRate = vat

	return cfg, nil
}
