package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// ConfigOverrides holds command line flag overrides. A nil field means the
// flag was not given.
type ConfigOverrides struct {
	ConfigPath *string
	DataDir    *string
	DBFilename *string
	Debug      *bool
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Overlay the YAML config file
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides runs Load and then applies command line overrides.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	l.path = l.configPath(overrides)
	if err := l.config.LoadFile(l.path); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// Path returns the config file consulted by the last load, whether or not it
// existed.
func (l *Loader) Path() string {
	return l.path
}

// configPath finds the YAML file before any layer is applied: --config wins,
// otherwise config.yaml inside the data directory chosen by flag, environment
// or default, in that order.
func (l *Loader) configPath(overrides *ConfigOverrides) string {
	if overrides != nil && overrides.ConfigPath != nil && *overrides.ConfigPath != "" {
		return *overrides.ConfigPath
	}
	dir := l.config.Database.Dir
	if env := os.Getenv(EnvDataDir); env != "" {
		dir = env
	}
	if overrides != nil && overrides.DataDir != nil && *overrides.DataDir != "" {
		dir = *overrides.DataDir
	}
	return filepath.Join(dir, ConfigFilename)
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		config.Database.Dir = *overrides.DataDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
