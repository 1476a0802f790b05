package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadFromEnvironment.
const (
	EnvDataDir        = "TASKLIST_DATA_DIR"
	EnvDBFilename     = "TASKLIST_DB_FILENAME"
	EnvDirPermissions = "TASKLIST_DIR_PERMISSIONS"
	EnvDebug          = "TASKLIST_DEBUG"
	EnvTitle          = "TASKLIST_TITLE"
)

// ConfigFilename is looked up inside the data directory.
const ConfigFilename = "config.yaml"

// Config holds all configuration options for the task list
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `yaml:"dir"`
	Filename       string `yaml:"filename"`
	DirPermissions DirMode `yaml:"dir_permissions"`
}

// DirMode is a directory permission. Config files always read and write it
// in octal, so 755, 0755 and 0o755 all mean rwxr-xr-x.
type DirMode uint32

func (m DirMode) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%04o", uint32(m))}, nil
}

func (m *DirMode) UnmarshalYAML(node *yaml.Node) error {
	v := strings.TrimPrefix(strings.ToLower(node.Value), "0o")
	n, err := strconv.ParseUint(v, 8, 32)
	if err != nil {
		return fmt.Errorf("dir_permissions: %q is not an octal mode", node.Value)
	}
	*m = DirMode(n)
	return nil
}

// DisplayConfig holds display configuration for the interactive list
type DisplayConfig struct {
	Title string `yaml:"title"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultDataDir returns ~/.tasklist, or .tasklist when the home directory is
// unknown.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tasklist"
	}
	return filepath.Join(homeDir, ".tasklist")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDataDir(),
			Filename:       "tasks.db",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			Title: "Tasks",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes c as YAML to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(c.Database.DirPermissions)); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv(EnvDBFilename); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv(EnvDirPermissions); perms != "" {
		c.Database.DirPermissions = DirMode(ParseUint32WithFallback(perms, 8, uint32(c.Database.DirPermissions)))
	}
	if debug := os.Getenv(EnvDebug); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}
	if title := os.Getenv(EnvTitle); title != "" {
		c.Display.Title = title
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "data directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.Filename != filepath.Base(c.Database.Filename) {
		return &ConfigError{Field: "database.filename", Message: "database filename must not contain a directory"}
	}
	if c.Database.DirPermissions == 0 || c.Database.DirPermissions > 0777 {
		return &ConfigError{Field: "database.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}
	if c.Display.Title == "" {
		return &ConfigError{Field: "display.title", Message: "title cannot be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
