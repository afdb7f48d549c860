// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite file

	// Generation horizon
	DaysAhead        int     // how many civil days to generate past today
	DiscreteStepDays float64 // sampling granularity for transition searches, in days

	// Ayanamsa model (linear sidereal correction)
	AyanamsaDegAtJ2000    float64 // offset in degrees at the J2000 epoch
	AyanamsaArcsecPerYear float64 // secular rate in arcseconds per Julian year

	// External data
	ManualEventsPath string // optional JSON file with hand-maintained events

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Lahiri ayanamsa defaults. The rate is the standard precession-driven
// drift; both are overridable for other ayanamsa conventions.
const (
	DefaultAyanamsaDegAtJ2000    = 23.85675
	DefaultAyanamsaArcsecPerYear = 50.290966
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is a no-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Database
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/panchangam.db")

	// Generation horizon
	cfg.DaysAhead = getEnvInt("DAYS_AHEAD", 366)
	cfg.DiscreteStepDays = getEnvFloat("DISCRETE_STEP_DAYS", 0.04)

	// Ayanamsa
	cfg.AyanamsaDegAtJ2000 = getEnvFloat("AYANAMSA_DEG_AT_J2000", DefaultAyanamsaDegAtJ2000)
	cfg.AyanamsaArcsecPerYear = getEnvFloat("AYANAMSA_ARCSEC_PER_YEAR", DefaultAyanamsaArcsecPerYear)

	// External data
	cfg.ManualEventsPath = getEnv("MANUAL_EVENTS_PATH", "./manual_events.json")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// Validate database path is set
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// Horizon must be bounded so total work stays finite
	if c.DaysAhead < 1 || c.DaysAhead > 3660 {
		errs = append(errs, fmt.Errorf("DAYS_AHEAD must be between 1 and 3660, got %d", c.DaysAhead))
	}

	// Step granularity has to resolve the shortest karana (~9.5h ≈ 0.4 days)
	if c.DiscreteStepDays <= 0 || c.DiscreteStepDays > 0.25 {
		errs = append(errs, fmt.Errorf("DISCRETE_STEP_DAYS must be in (0, 0.25], got %g", c.DiscreteStepDays))
	}

	if c.AyanamsaDegAtJ2000 < 0 || c.AyanamsaDegAtJ2000 >= 360 {
		errs = append(errs, fmt.Errorf("AYANAMSA_DEG_AT_J2000 must be in [0, 360), got %g", c.AyanamsaDegAtJ2000))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if fVal, err := strconv.ParseFloat(value, 64); err == nil {
			return fVal
		}
	}
	return defaultValue
}
