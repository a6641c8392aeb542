// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection (generation log). Disabled when DBHost is empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible preview cache). Disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible storage for exported sites. Disabled when S3Endpoint is empty.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// PreviewCacheTTL is how long a preview response stays in Valkey.
	PreviewCacheTTL time.Duration

	// GenerateRateLimit is the number of generate requests allowed per
	// client IP per minute.
	GenerateRateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode or a value cannot be parsed.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "sitekit"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "sitekit"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "sitekit-exports"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	ttl, err := time.ParseDuration(envOrDefault("PREVIEW_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("PREVIEW_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("PREVIEW_CACHE_TTL must be positive, got %s", ttl)
	}
	cfg.PreviewCacheTTL = ttl

	limit, err := strconv.Atoi(envOrDefault("GENERATE_RATE_LIMIT", "30"))
	if err != nil {
		return nil, fmt.Errorf("GENERATE_RATE_LIMIT: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("GENERATE_RATE_LIMIT must be positive, got %d", limit)
	}
	cfg.GenerateRateLimit = limit

	if cfg.Env == "production" && cfg.DatabaseEnabled() {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// DatabaseEnabled reports whether the generation log database is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// ValkeyEnabled reports whether the preview cache is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// StorageEnabled reports whether site export storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
