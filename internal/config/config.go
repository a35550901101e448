package config

import (
	"os"
	"strconv"

	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/dist"
	"github.com/savthe/prediction-confidence/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database     DatabaseConfig
	Server       ServerConfig
	Distribution DistributionConfig
	Profiling    ProfilingConfig
}

// DatabaseConfig holds database connection settings. A blank URL disables
// persistence: the service then serves the built-in default distribution only.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DistributionConfig holds the default distribution served under the name
// "default". All values are fixed before the first table is built.
type DistributionConfig struct {
	Mean          float64
	Stdev         float64
	SupportSigmas float64
	Points        int
	Interpolate   bool
}

// ProfilingConfig holds the pprof debug server settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	ref := confidence.DefaultConfig()

	cfg := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Distribution: DistributionConfig{
			Mean:          getEnvFloatOrDefault("DIST_MEAN", ref.Params.Mean),
			Stdev:         getEnvFloatOrDefault("DIST_STDEV", ref.Params.Stdev),
			SupportSigmas: getEnvFloatOrDefault("DIST_SUPPORT_SIGMAS", confidence.DefaultSupportSigmas),
			Points:        getEnvIntOrDefault("DIST_POINTS", ref.Points),
			Interpolate:   getEnvBoolOrDefault("DIST_INTERPOLATE", false),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// TableConfig expands the default distribution settings into a buildable
// table configuration.
func (c *Config) TableConfig() confidence.Config {
	p := dist.Params{Mean: c.Distribution.Mean, Stdev: c.Distribution.Stdev}
	return confidence.Config{
		Params:      p,
		Lower:       p.Mean - c.Distribution.SupportSigmas*p.Stdev,
		Upper:       p.Mean + c.Distribution.SupportSigmas*p.Stdev,
		Points:      c.Distribution.Points,
		Interpolate: c.Distribution.Interpolate,
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if cfg.Distribution.Stdev <= 0 {
		return errors.ConfigInvalid("DIST_STDEV must be positive")
	}
	if cfg.Distribution.SupportSigmas <= 0 {
		return errors.ConfigInvalid("DIST_SUPPORT_SIGMAS must be positive")
	}
	if cfg.Distribution.Points < 1 {
		return errors.ConfigInvalid("DIST_POINTS must be at least 1")
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
