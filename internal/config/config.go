package config

import (
	"path/filepath"
	"time"

	"github.com/seetoh/coursefinder/internal/dataset"
)

// Config represents the application configuration
type Config struct {
	Data    DataConfig    `toml:"data"`
	Cache   CacheConfig   `toml:"cache"`
	Scoring ScoringConfig `toml:"scoring"`
	Export  ExportConfig  `toml:"export"`
}

// DataConfig locates the CSV extracts the merger consumes
type DataConfig struct {
	Dir        string `toml:"dir"`
	Courses    string `toml:"courses"`
	Global     string `toml:"rankings_global"`
	Subject    string `toml:"rankings_subject"`
	MedSchools string `toml:"med_schools"`
	Admissions string `toml:"admissions"`
}

// SourcePaths resolves the per-table file names against the data directory
func (d DataConfig) SourcePaths() dataset.SourcePaths {
	return dataset.SourcePaths{
		Courses:    filepath.Join(d.Dir, d.Courses),
		Global:     filepath.Join(d.Dir, d.Global),
		Subject:    filepath.Join(d.Dir, d.Subject),
		MedSchools: filepath.Join(d.Dir, d.MedSchools),
		Admissions: filepath.Join(d.Dir, d.Admissions),
	}
}

// CacheConfig controls the master record set cache
type CacheConfig struct {
	TTLHours int `toml:"ttl_hours"`
}

// TTL returns the cache time-to-live as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// ScoringConfig holds composite scoring defaults
type ScoringConfig struct {
	// GlobalWeight blends global vs subject rank: 0 = subject only,
	// 1 = global only.
	GlobalWeight float64 `toml:"global_weight"`
}

// ExportConfig limits export size
type ExportConfig struct {
	MaxRows int `toml:"max_rows"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:        "~/.local/share/coursefinder/data",
			Courses:    "courses.csv",
			Global:     "rankings_global.csv",
			Subject:    "rankings_subject.csv",
			MedSchools: "med_schools.csv",
			Admissions: "oxbridge_admissions.csv",
		},
		Cache: CacheConfig{
			TTLHours: 1,
		},
		Scoring: ScoringConfig{
			GlobalWeight: 0.5,
		},
		Export: ExportConfig{
			MaxRows: 50,
		},
	}
}
