// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port               string
	FrontendURL        string
	DBPath             string
	OutputDir          string
	SessionTTL         time.Duration
	SessionMax         int
	RenderTimeout      time.Duration
	PersistenceEnabled bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		FrontendURL:        getEnv("FRONTEND_URL", ""),
		DBPath:             getEnv("DB_PATH", "./data/assistant.db"),
		OutputDir:          getEnv("OUTPUT_DIR", "./generated_resumes"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		SessionMax:         getEnvInt("SESSION_MAX", 10000),
		RenderTimeout:      time.Duration(getEnvInt("RENDER_TIMEOUT_SECONDS", 15)) * time.Second,
		PersistenceEnabled: getEnvBool("PERSISTENCE_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR cannot be empty")
	}
	if c.PersistenceEnabled && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty when persistence is enabled")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be >= 0")
	}
	if c.SessionMax < 0 {
		return fmt.Errorf("SESSION_MAX must be >= 0")
	}
	if c.RenderTimeout <= 0 {
		return fmt.Errorf("RENDER_TIMEOUT_SECONDS must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
