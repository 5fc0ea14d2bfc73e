// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Candidates string `json:"candidates,omitempty"` // Path to candidates JSON file
	Jobs       string `json:"jobs,omitempty"`       // Path to jobs JSON file

	// Behavior
	TopLimit int  `json:"top_limit,omitempty"` // Result limit for top-matches
	Verbose  bool `json:"verbose,omitempty"`   // Print formatted match summaries
	LogJSON  bool `json:"log_json,omitempty"`  // JSON log encoding instead of console

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	if c.TopLimit < 0 {
		return fmt.Errorf("config error: 'top_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	// Validate file paths exist (if specified)
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TopLimit == 0 {
		result.TopLimit = defaults.TopLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.LogJSON {
		result.LogJSON = defaults.LogJSON
	}

	return result
}
