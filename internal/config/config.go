package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth; empty disables bearer auth on the API.
	APIKey string

	// Rewrite pipeline
	ManURLHost string
	ManSection string

	// Upload limits
	MaxBodyBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("MANDOWN_API_KEY"),

		ManURLHost: envOr("MAN_URL_HOST", "man7.org"),
		ManSection: envOr("MAN_SECTION", "1"),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 10485760), // 10MB
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ManURLHost == "" {
		return fmt.Errorf("MAN_URL_HOST must not be empty")
	}
	if len(c.ManSection) != 1 || c.ManSection[0] < '0' || c.ManSection[0] > '9' {
		return fmt.Errorf("MAN_SECTION must be a single digit, got %q", c.ManSection)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
