package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hasinarv/cashpoint_backend/internal/utils/fees"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Ledger tuning, amounts in integer Ariary
	MinTransactionAmount int64
	WithdrawalFeeFloor   int64
	WithdrawalFeeRateBP  int64
	TransferFeeFloor     int64
	TransferFeeRateBP    int64

	// Requests per period per IP, limiter format e.g. "100-M"
	RateLimit string

	// Optional webhook subscriber for session/transaction events
	WebhookURL string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("MIN_TRANSACTION_AMOUNT", int64(1000))
	viper.SetDefault("WITHDRAWAL_FEE_FLOOR", fees.DefaultWithdrawalFloor)
	viper.SetDefault("WITHDRAWAL_FEE_RATE_BP", fees.DefaultWithdrawalRateBP)
	viper.SetDefault("TRANSFER_FEE_FLOOR", fees.DefaultTransferFloor)
	viper.SetDefault("TRANSFER_FEE_RATE_BP", fees.DefaultTransferRateBP)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("WEBHOOK_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.MinTransactionAmount = viper.GetInt64("MIN_TRANSACTION_AMOUNT")
	if cfg.MinTransactionAmount < 0 {
		log.Printf("Warning: MIN_TRANSACTION_AMOUNT is negative (%d). Defaulting to 1000.\n", cfg.MinTransactionAmount)
		cfg.MinTransactionAmount = 1000
	}

	cfg.WithdrawalFeeFloor = viper.GetInt64("WITHDRAWAL_FEE_FLOOR")
	cfg.WithdrawalFeeRateBP = viper.GetInt64("WITHDRAWAL_FEE_RATE_BP")
	cfg.TransferFeeFloor = viper.GetInt64("TRANSFER_FEE_FLOOR")
	cfg.TransferFeeRateBP = viper.GetInt64("TRANSFER_FEE_RATE_BP")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.WebhookURL = viper.GetString("WEBHOOK_URL")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}
