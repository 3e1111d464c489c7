package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/Gogonemnem/FDA/internal/errors"
)

// Config holds engine-level settings that are not part of any one scenario:
// how many workers to fan out across, the base seed for reproducible runs,
// and where results go.
type Config struct {
	Engine EngineConfig
	Output OutputConfig
}

// EngineConfig holds simulation execution settings
type EngineConfig struct {
	Workers int
	Seed    uint64
}

// OutputConfig holds result export settings
type OutputConfig struct {
	Path   string
	Format string // "csv" or "xlsx"
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Engine: EngineConfig{
			Workers: getEnvIntOrDefault("FDA_WORKERS", runtime.NumCPU()),
			Seed:    getEnvUintOrDefault("FDA_SEED", 1),
		},
		Output: OutputConfig{
			Path:   getEnvOrDefault("FDA_OUTPUT", "coverage.csv"),
			Format: getEnvOrDefault("FDA_FORMAT", "csv"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Engine.Workers <= 0 {
		return errors.ConfigInvalid("worker count must be positive")
	}
	if config.Output.Format != "csv" && config.Output.Format != "xlsx" {
		return errors.ConfigInvalid("output format must be csv or xlsx")
	}
	if config.Output.Path == "" {
		return errors.ConfigInvalid("output path is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}
