package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility.
//
// This includes:
//   - logging settings (format, level, thresholds)
//   - APM/tracing provider settings (New Relic here)
//   - health check settings
//
// It is optional at the root-level (pointer in Config). If omitted, defaults are injected.
type ObservabilityConfig struct {
	ServiceName  string             `koanf:"service_name" validate:"required"`
	Environment  string             `koanf:"environment" validate:"required"`
	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic" validate:"required"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs ("json" or "console").
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold marks queries slower than this as slow in SQL traces.
	// Env values are duration strings like "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means New Relic is disabled.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks run by GET /status.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout is the max time allowed for one dependency check.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks is a list of check names to run (currently only "database").
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides a safe set of defaults.
//
// Used when Config.Observability is nil (not provided via env).
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // Disabled by default to avoid mixed log formats
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"database"},
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.Enabled && c.HealthChecks.Timeout <= 0 {
		return fmt.Errorf("health_checks timeout must be positive when enabled")
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// It supports "defaulting by environment":
//   - In production: default to "info" if no level is set.
//   - In development: default to "debug" if no level is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}

	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
