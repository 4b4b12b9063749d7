// Package config loads tracker settings from defaults, an optional YAML file
// and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"tasktracker/internal/tracker"
)

// Config holds front-end settings. The core has no configuration.
type Config struct {
	// Port is the HTTP listen port for the serve command.
	Port string `yaml:"port"`

	// DateLayout is the Go time layout used by the console for due dates.
	DateLayout string `yaml:"date_layout"`

	// DefaultSort is the order used by list when no sort key is given.
	DefaultSort string `yaml:"default_sort"`

	// Quiet suppresses informational console output and tracker logs.
	Quiet bool `yaml:"quiet"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:        "8080",
		DateLayout:  "02/01/2006",
		DefaultSort: string(tracker.SortNone),
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DateLayout = getEnv("TASKS_DATE_LAYOUT", cfg.DateLayout)
	cfg.DefaultSort = getEnv("TASKS_DEFAULT_SORT", cfg.DefaultSort)
	if v := os.Getenv("TASKS_QUIET"); v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TASKS_QUIET: %w", err)
		}
		cfg.Quiet = quiet
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.DateLayout == "" {
		return fmt.Errorf("date_layout is required")
	}
	if _, err := tracker.ParseSortKey(c.DefaultSort); err != nil {
		return fmt.Errorf("invalid default_sort: %w", err)
	}
	return nil
}

// SortKey returns the parsed default sort key.
func (c *Config) SortKey() tracker.SortKey {
	key, err := tracker.ParseSortKey(c.DefaultSort)
	if err != nil {
		return tracker.SortNone
	}
	return key
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
