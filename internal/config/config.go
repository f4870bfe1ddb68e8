package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Backend API configuration
	BackendBaseURL string
	BackendTimeout time.Duration

	// Origin used to resolve server-relative image paths in rendered pages.
	// Defaults to BackendBaseURL when unset.
	AssetBaseURL string

	// Session cookie configuration
	CookieSecure bool
	CookieMaxAge time.Duration

	// Feed configuration
	FeedPageSize int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ReadTimeout:    getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:    getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:3000"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 30*time.Second),
		AssetBaseURL:   getEnv("ASSET_BASE_URL", ""),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 30*24*time.Hour),
		FeedPageSize:   getEnvInt("FEED_PAGE_SIZE", 10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.AssetBaseURL == "" {
		cfg.AssetBaseURL = cfg.BackendBaseURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.BackendBaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if u, err := url.Parse(c.BackendBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL")
	}
	if c.FeedPageSize < 1 {
		return fmt.Errorf("FEED_PAGE_SIZE must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
