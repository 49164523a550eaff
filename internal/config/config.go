// ABOUTME: Centralized configuration for the tag router
// ABOUTME: Loads from environment variables once at startup with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBackendTimeout bounds a single outbound backend call
const DefaultBackendTimeout = 30 * time.Second

// Config holds all configuration for the router. It is read-only after Load.
type Config struct {
	// Server settings
	Addr    string
	GinMode string

	// Outbound settings
	BackendTimeout time.Duration

	// Io (Gemini) settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	// Lumo (OpenAI-compatible) settings
	LumoKey     string
	LumoModel   string
	LumoBaseURL string

	// Copilot settings (stub backend, key is only reported)
	CopilotKey string

	// Logging settings
	LogLevel string
	LogJSON  bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	timeout, err := getEnvDuration("ROUTER_BACKEND_TIMEOUT", DefaultBackendTimeout)
	if err != nil {
		return nil, err
	}
	logJSON, err := getEnvBool("LOG_JSON", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		// Defaults
		Addr:           getEnv("ROUTER_ADDR", "0.0.0.0:5000"),
		GinMode:        getEnv("GIN_MODE", "release"),
		BackendTimeout: timeout,
		GeminiKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
		LumoKey:        strings.TrimSpace(os.Getenv("LUMO_API_KEY")),
		LumoModel:      getEnv("LUMO_MODEL", "gpt-4o-mini"),
		LumoBaseURL:    os.Getenv("LUMO_BASE_URL"),
		CopilotKey:     strings.TrimSpace(os.Getenv("COPILOT_API_KEY")),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogJSON:        logJSON,
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.BackendTimeout <= 0 || c.BackendTimeout > 5*time.Minute {
		return fmt.Errorf("ROUTER_BACKEND_TIMEOUT must be between 0 and 5m, got %s", c.BackendTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.Addr == "" {
		return fmt.Errorf("ROUTER_ADDR must not be empty")
	}
	return nil
}

// MaskSecret keeps the first 4 characters of a credential for log output
func MaskSecret(s string) string {
	if s == "" {
		return "(unset)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// bare integers are seconds
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("%s must be a duration like 30s or a number of seconds, got %q", key, v)
}
