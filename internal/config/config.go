package config

import (
	"fmt"
	"os"
	"strconv"

	"vizlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port       string
	GinMode    string
	ReportPort string // standalone profile-report viewer
}

// DatabaseConfig holds optional dataset persistence settings. Persistence is
// enabled only when a URL is configured.
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// DataConfig holds dataset processing limits
type DataConfig struct {
	SampleSize    int   // rows read by schema inference
	TopValues     int   // categorical top-K kept by the profiler
	MaxUploadSize int64 // bytes
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8080"),
			GinMode:    getEnvOrDefault("GIN_MODE", "debug"),
			ReportPort: getEnvOrDefault("REPORT_PORT", "8081"),
		},
		Database: DatabaseConfig{
			URL:     dbURL,
			Enabled: dbURL != "",
		},
		Data: DataConfig{
			SampleSize:    getEnvIntOrDefault("SCHEMA_SAMPLE_SIZE", 100),
			TopValues:     getEnvIntOrDefault("PROFILE_TOP_VALUES", 10),
			MaxUploadSize: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, v := range map[string]int{
		"SCHEMA_SAMPLE_SIZE": c.Data.SampleSize,
		"PROFILE_TOP_VALUES": c.Data.TopValues,
	} {
		if v <= 0 {
			return errors.ConfigInvalid(fmt.Sprintf("%s must be positive, got %d", name, v))
		}
	}
	if c.Data.MaxUploadSize <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
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
