// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultLogLevel     = "warn"
	DefaultBookPath     = "iching_db.json"
	DefaultOptimalDays  = 30
	DefaultOptimalLimit = 5
)

// Config holds application configuration
type Config struct {
	LogLevel     string
	LogPretty    bool
	BookPath     string         // Optional reference book; missing file falls back to the built-in table
	OptimalDays  int            // Days scanned by the optimal view
	OptimalLimit int            // Maximum moments listed by the optimal view
	Location     *time.Location // Zone used for "now" and parsed dates
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogPretty:    getEnvAsBool("LOG_PRETTY", true),
		BookPath:     getEnv("SACRA_BOOK_PATH", DefaultBookPath),
		OptimalDays:  getEnvAsInt("SACRA_OPTIMAL_DAYS", DefaultOptimalDays),
		OptimalLimit: getEnvAsInt("SACRA_OPTIMAL_LIMIT", DefaultOptimalLimit),
	}

	loc, err := loadLocation(getEnv("SACRA_TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if c.OptimalDays <= 0 {
		return fmt.Errorf("SACRA_OPTIMAL_DAYS must be positive, got %d", c.OptimalDays)
	}
	if c.OptimalLimit <= 0 {
		return fmt.Errorf("SACRA_OPTIMAL_LIMIT must be positive, got %d", c.OptimalLimit)
	}
	if c.Location == nil {
		return fmt.Errorf("time zone is not set")
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
