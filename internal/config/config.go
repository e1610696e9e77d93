// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/pds-screener/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DatabaseURL string           `json:"database_url,omitempty"` // PostgreSQL connection URL for the job posting store
	Workers     int              `json:"workers,omitempty"`      // Parallelism for batch comparison
	Verbose     bool             `json:"verbose,omitempty"`      // Print background summaries and score breakdowns
	JSONLogs    bool             `json:"json_logs,omitempty"`    // Emit batch progress logs as JSON
	Weights     *scoring.Weights `json:"weights,omitempty"`      // Category weight overrides; must sum to 1
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// ScoringWeights returns the configured weight overrides, falling back to
// the institutional defaults.
func (c *Config) ScoringWeights() scoring.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	return result
}
