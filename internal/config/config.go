// Package config provides configuration for the event dispatch service,
// loaded from environment variables with sensible defaults.
//
// Environment Variables:
//   - PORT: Introspection API port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - HUB_QUEUE_SIZE: Async event hub buffer size (default: 256)
//   - MATCH_PARALLELISM: Concurrent filter evaluations per event (default: 8)
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration values for the event dispatch service.
type Config struct {
	Port             string // Introspection API port
	LogLevel         string // Logging level (debug, info, warn, error)
	HubQueueSize     int    // Async event hub buffer size
	MatchParallelism int    // Concurrent filter evaluations per event
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HubQueueSize:     getEnvInt("HUB_QUEUE_SIZE", 256),
		MatchParallelism: getEnvInt("MATCH_PARALLELISM", 8),
	}
}

// Validate checks that the configuration can run the service.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.HubQueueSize < 1 {
		return fmt.Errorf("HUB_QUEUE_SIZE must be positive, got %d", c.HubQueueSize)
	}
	if c.MatchParallelism < 1 {
		return fmt.Errorf("MATCH_PARALLELISM must be positive, got %d", c.MatchParallelism)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
