// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"caltrack/internal/logger"
)

// Config is the service configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	CORSOrigins []string
	FoodDB      FoodDBConfig
	Logger      logger.Config
}

// FoodDBConfig configures the Open Food Facts client.
type FoodDBConfig struct {
	BaseURL   string
	Timeout   time.Duration
	PageSize  int
	UserAgent string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads the configuration from environment variables. An empty
// DATABASE_URL selects the in-memory store.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnvOrDefault("OFF_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("OFF_TIMEOUT: invalid duration %q", os.Getenv("OFF_TIMEOUT"))
	}
	pageSize, err := strconv.Atoi(getEnvOrDefault("OFF_PAGE_SIZE", "20"))
	if err != nil || pageSize <= 0 {
		return nil, fmt.Errorf("OFF_PAGE_SIZE: invalid page size %q", os.Getenv("OFF_PAGE_SIZE"))
	}

	return &Config{
		Addr:        getEnvOrDefault("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		FoodDB: FoodDBConfig{
			BaseURL:   getEnvOrDefault("OFF_BASE_URL", "https://world.openfoodfacts.org/api/v2"),
			Timeout:   timeout,
			PageSize:  pageSize,
			UserAgent: getEnvOrDefault("OFF_USER_AGENT", "CalTrack/1.0"),
		},
		Logger: logger.Config{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
