package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// Load decodes the current viper state into a typed Config and stores it
// for GetConfig. Call after viper has read defaults, file, and environment.
func Load() (*Config, error) {
	cfg := &Config{}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	configMu.Lock()
	appConfig = cfg
	configMu.Unlock()

	return cfg, nil
}

// GetConfig returns the last loaded configuration, or nil before Load.
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// SetConfig replaces the loaded configuration. Intended for tests.
func SetConfig(cfg *Config) {
	configMu.Lock()
	appConfig = cfg
	configMu.Unlock()
}

// DefaultStorePath returns the default probe cache location under the user
// config directory.
func DefaultStorePath() string {
	return filepath.Join(defaultConfigDir(), "probes.db")
}

// DefaultErrorLogPath returns the default error log location.
func DefaultErrorLogPath() string {
	return filepath.Join(defaultConfigDir(), "probe-errors.log")
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "traceprint")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".traceprint")
	}
	return "."
}
