package config

import (
	"os"
	"strconv"

	"waypoint/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Paths  PathConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds roster upload limits
type UploadConfig struct {
	MaxBytes           int64
	MaxConcurrentParse int64
}

// PathConfig holds file system paths
type PathConfig struct {
	// StaticDir optionally points at a frontend bundle served at /.
	StaticDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8000"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxBytes:           getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 10<<20),
			MaxConcurrentParse: getEnvInt64OrDefault("MAX_CONCURRENT_PARSES", 8),
		},
		Paths: PathConfig{
			StaticDir: getEnvOrDefault("STATIC_DIR", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if config.Upload.MaxConcurrentParse <= 0 {
		return errors.ConfigInvalid("MAX_CONCURRENT_PARSES must be positive")
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
