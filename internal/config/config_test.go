package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"BACKEND_BASE_URL",
		"BACKEND_TIMEOUT",
		"ASSET_BASE_URL",
		"COOKIE_SECURE",
		"COOKIE_MAX_AGE",
		"FEED_PAGE_SIZE",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.BackendBaseURL != "http://localhost:3000" {
			t.Errorf("BackendBaseURL = %v, want http://localhost:3000", cfg.BackendBaseURL)
		}
		if cfg.AssetBaseURL != "http://localhost:3000" {
			t.Errorf("AssetBaseURL = %v, want backend base URL", cfg.AssetBaseURL)
		}
		if cfg.BackendTimeout != 30*time.Second {
			t.Errorf("BackendTimeout = %v, want 30s", cfg.BackendTimeout)
		}
		if cfg.CookieSecure {
			t.Error("CookieSecure = true, want false")
		}
		if cfg.FeedPageSize != 10 {
			t.Errorf("FeedPageSize = %v, want 10", cfg.FeedPageSize)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("BACKEND_BASE_URL", "https://api.example.com")
		os.Setenv("ASSET_BASE_URL", "https://cdn.example.com")
		os.Setenv("BACKEND_TIMEOUT", "5s")
		os.Setenv("COOKIE_SECURE", "true")
		os.Setenv("FEED_PAGE_SIZE", "25")
		defer func() {
			for _, env := range envVars {
				os.Unsetenv(env)
			}
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.BackendBaseURL != "https://api.example.com" {
			t.Errorf("BackendBaseURL = %v, want https://api.example.com", cfg.BackendBaseURL)
		}
		if cfg.AssetBaseURL != "https://cdn.example.com" {
			t.Errorf("AssetBaseURL = %v, want https://cdn.example.com", cfg.AssetBaseURL)
		}
		if cfg.BackendTimeout != 5*time.Second {
			t.Errorf("BackendTimeout = %v, want 5s", cfg.BackendTimeout)
		}
		if !cfg.CookieSecure {
			t.Error("CookieSecure = false, want true")
		}
		if cfg.FeedPageSize != 25 {
			t.Errorf("FeedPageSize = %v, want 25", cfg.FeedPageSize)
		}
	})

	t.Run("invalid backend URL", func(t *testing.T) {
		os.Setenv("BACKEND_BASE_URL", "not-a-url")
		defer os.Unsetenv("BACKEND_BASE_URL")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for relative BACKEND_BASE_URL")
		}
	})

	t.Run("invalid feed page size", func(t *testing.T) {
		os.Setenv("FEED_PAGE_SIZE", "0")
		defer os.Unsetenv("FEED_PAGE_SIZE")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for FEED_PAGE_SIZE=0")
		}
	})

	t.Run("malformed int falls back to default", func(t *testing.T) {
		os.Setenv("FEED_PAGE_SIZE", "ten")
		defer os.Unsetenv("FEED_PAGE_SIZE")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.FeedPageSize != 10 {
			t.Errorf("FeedPageSize = %v, want default 10", cfg.FeedPageSize)
		}
	})
}
