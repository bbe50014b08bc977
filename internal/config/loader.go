package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'coursefinder config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if cfg.Data.Dir, err = expandPath(cfg.Data.Dir); err != nil {
		return nil, fmt.Errorf("failed to expand data dir: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Data validation
	if c.Data.Dir == "" {
		errs = append(errs, errors.New("data.dir is required"))
	}
	for name, file := range map[string]string{
		"data.courses":          c.Data.Courses,
		"data.rankings_global":  c.Data.Global,
		"data.rankings_subject": c.Data.Subject,
		"data.med_schools":      c.Data.MedSchools,
		"data.admissions":       c.Data.Admissions,
	} {
		if file == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	// Cache validation
	if c.Cache.TTLHours < 0 {
		errs = append(errs, errors.New("cache.ttl_hours must not be negative"))
	}

	// Scoring validation
	if c.Scoring.GlobalWeight < 0 || c.Scoring.GlobalWeight > 1 {
		errs = append(errs, fmt.Errorf("scoring.global_weight must be between 0 and 1, got %v", c.Scoring.GlobalWeight))
	}

	// Export validation
	if c.Export.MaxRows < 1 {
		errs = append(errs, errors.New("export.max_rows must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
