package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CashAccountCode names the account the document classifier treats as
	// the cash side of every default mapping.
	CashAccountCode string
	// COGSAccountCode names the expense account the income statement breaks
	// out as cost of goods sold.
	COGSAccountCode string

	// RateLimit uses the limiter formatted-rate syntax, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CASH_ACCOUNT_CODE", "1000")
	viper.SetDefault("COGS_ACCOUNT_CODE", "5000")
	viper.SetDefault("RATE_LIMIT", "100-M")

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

	cfg.CashAccountCode = viper.GetString("CASH_ACCOUNT_CODE")
	if cfg.CashAccountCode == "" {
		cfg.CashAccountCode = "1000"
		log.Printf("Warning: CASH_ACCOUNT_CODE not set. Defaulting to %s.\n", cfg.CashAccountCode)
	}

	cfg.COGSAccountCode = viper.GetString("COGS_ACCOUNT_CODE")
	if cfg.COGSAccountCode == "" {
		cfg.COGSAccountCode = "5000"
		log.Printf("Warning: COGS_ACCOUNT_CODE not set. Defaulting to %s.\n", cfg.COGSAccountCode)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	return cfg, nil
}
