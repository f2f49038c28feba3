package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Classification labels recognized on the savings sheet
	SavingsLabels    []string
	AllocationLabels []string

	// Income categories dropped at import time
	ExcludedIncomeCategories []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		Port:                     getEnv("PORT", "8080"),
		CORSOrigins:              splitEnv("CORS_ORIGINS", "http://localhost:3000"),
		Env:                      getEnv("ENV", "development"),
		RateLimitPerMinute:       getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:           getEnvInt("RATE_LIMIT_BURST", 20),
		SavingsLabels:            splitEnv("SAVINGS_LABELS", "Savings,Risparmio"),
		AllocationLabels:         splitEnv("ALLOCATION_LABELS", "Allocation,Accantonamento"),
		ExcludedIncomeCategories: splitEnv("EXCLUDED_INCOME_CATEGORIES", "Welfare"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(c.SavingsLabels) == 0 {
		return fmt.Errorf("SAVINGS_LABELS must not be empty")
	}
	if len(c.AllocationLabels) == 0 {
		return fmt.Errorf("ALLOCATION_LABELS must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
