package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cache.TTLHours != 1 {
		t.Errorf("expected TTLHours=1, got %d", cfg.Cache.TTLHours)
	}

	if cfg.Scoring.GlobalWeight != 0.5 {
		t.Errorf("expected GlobalWeight=0.5, got %v", cfg.Scoring.GlobalWeight)
	}

	if cfg.Export.MaxRows != 50 {
		t.Errorf("expected MaxRows=50, got %d", cfg.Export.MaxRows)
	}

	if cfg.Data.Courses != "courses.csv" {
		t.Errorf("expected courses.csv, got %s", cfg.Data.Courses)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing data dir",
			modify: func(c *Config) {
				c.Data.Dir = ""
			},
			wantErr: true,
		},
		{
			name: "missing table file name",
			modify: func(c *Config) {
				c.Data.Subject = ""
			},
			wantErr: true,
		},
		{
			name: "negative cache ttl",
			modify: func(c *Config) {
				c.Cache.TTLHours = -1
			},
			wantErr: true,
		},
		{
			name: "weight above 1",
			modify: func(c *Config) {
				c.Scoring.GlobalWeight = 1.5
			},
			wantErr: true,
		},
		{
			name: "weight below 0",
			modify: func(c *Config) {
				c.Scoring.GlobalWeight = -0.1
			},
			wantErr: true,
		},
		{
			name: "zero export limit",
			modify: func(c *Config) {
				c.Export.MaxRows = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[data]
dir = "` + dir + `"

[scoring]
global_weight = 0.8

[export]
max_rows = 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scoring.GlobalWeight != 0.8 {
		t.Errorf("GlobalWeight = %v, want 0.8", cfg.Scoring.GlobalWeight)
	}
	if cfg.Export.MaxRows != 100 {
		t.Errorf("MaxRows = %d, want 100", cfg.Export.MaxRows)
	}
	// Unset keys keep defaults.
	if cfg.Data.Courses != "courses.csv" {
		t.Errorf("Courses = %s, want default courses.csv", cfg.Data.Courses)
	}

	paths := cfg.Data.SourcePaths()
	if paths.Courses != filepath.Join(dir, "courses.csv") {
		t.Errorf("SourcePaths().Courses = %s", paths.Courses)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Errorf("error should hint at config init, got: %v", err)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[scoring]
global_weight = 2.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
