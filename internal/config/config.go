package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"bidding-client/utils"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds runtime settings for the bidder client and the sandbox service
type Config struct {
	APIURL          string
	CredentialsFile string
	BidIncrement    decimal.Decimal
	TickInterval    time.Duration
	RequestTimeout  time.Duration
	LogLevel        string
	Port            string
	SeedFile        string
}

// Load reads an optional .env file and then the environment, falling back to defaults
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		utils.Warn("config: could not load .env file", map[string]any{"error": err.Error()})
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() Config {
	return Config{
		APIURL:          getEnv("AUCTION_API_URL", "http://localhost:8080"),
		CredentialsFile: getEnv("AUCTION_CREDENTIALS_FILE", "credentials.yaml"),
		BidIncrement:    getEnvAsDecimal("BID_INCREMENT", decimal.NewFromInt(1)),
		TickInterval:    getEnvAsDuration("COUNTDOWN_INTERVAL", time.Second),
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            ":" + getEnv("PORT", "8080"),
		SeedFile:        getEnv("SANDBOX_SEED_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	utils.Warn("config: invalid duration, using default", map[string]any{"key": key, "value": value})
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsPositive() {
		utils.Warn("config: invalid amount, using default", map[string]any{"key": key, "value": value})
		return defaultValue
	}
	return d
}
