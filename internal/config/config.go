// Package config provides centralized configuration for traceprint.
// Values are layered: built-in defaults, an optional YAML config file, then
// TRACEPRINT_* environment variables and flags bound through viper.
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Probe   ProbeConfig   `mapstructure:"probe"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`

	// ErrorLog is the append-only sink for probe failures.
	ErrorLog string `mapstructure:"error_log"`

	// PlatformCatalog optionally points at a YAML file merged over the
	// built-in platform catalog.
	PlatformCatalog string `mapstructure:"platform_catalog"`
}

// StoreConfig contains database configuration for libsql/Turso.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// CacheConfig contains probe cache TTL configuration.
type CacheConfig struct {
	FoundTTL    time.Duration `mapstructure:"found_ttl"`
	NotFoundTTL time.Duration `mapstructure:"not_found_ttl"`
	ErrorTTL    time.Duration `mapstructure:"error_ttl"`
}

// ProbeConfig controls individual HTTP probes.
type ProbeConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	Workers   int           `mapstructure:"workers"`
}

// SearchConfig controls comprehensive-search behavior.
type SearchConfig struct {
	MaxVariants        int           `mapstructure:"max_variants"`
	VariantConcurrency int           `mapstructure:"variant_concurrency"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}
