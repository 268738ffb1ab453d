// Package config provides configuration management for GNtaxobox.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - General: lang, footnotes, jobs_number
//   - Enrich: enabled, db_path
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNTAXOBOX_ prefix with underscores for nesting:
//
//	GNTAXOBOX_LANG=de
//	GNTAXOBOX_ENRICH_ENABLED=true
//	GNTAXOBOX_LOG_LEVEL=info
//	GNTAXOBOX_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNtaxobox configuration.
type Config struct {
	// Lang is the language edition of the processed dump, as an ISO 639
	// code. It selects the titles of kingdom articles and builds links.
	Lang string `mapstructure:"lang" yaml:"lang"`

	// Footnotes enables rendering of citation templates inside values.
	Footnotes bool `mapstructure:"footnotes" yaml:"footnotes"`

	// Enrich contains settings of the taxonomy template index.
	Enrich EnrichConfig `mapstructure:"enrich" yaml:"enrich"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set during init, there is no default value for it.
	HomeDir string
}

// EnrichConfig contains settings for automatic taxobox classification.
type EnrichConfig struct {
	// Enabled turns on lookups of taxonomy templates for automatic
	// taxoboxes and species boxes.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// DBPath is the SQLite file with the taxonomy template index.
	// Empty means the default file in the cache directory.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Lang: "en",
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
