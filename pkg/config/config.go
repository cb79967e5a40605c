// Package config provides configuration management for exocat.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
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
// # Environment Variables
//
// Use EXOCAT_ prefix with underscores for nesting:
//
//	EXOCAT_CATALOG_BATCH_SIZE=20000
//	EXOCAT_CLUSTER_RA_PRECISION=7
//	EXOCAT_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete exocat configuration.
type Config struct {
	// Catalog contains settings for catalog assembly and export.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`

	// Cluster contains coordinate-matching settings for the
	// observation log.
	Cluster ClusterConfig `mapstructure:"cluster" yaml:"cluster"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for loading
	// independent input files. Assembly itself is single-threaded.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and data directories
	// reside. It must be set by the CLI during init, there is no
	// default value for it.
	HomeDir string
}

// CatalogConfig contains catalog assembly and export parameters.
type CatalogConfig struct {
	// PreferredPrefixes ranks catalog prefixes for selecting one
	// representative alias when a downstream lookup needs exactly one
	// name instead of a list.
	PreferredPrefixes []string `mapstructure:"preferred_prefixes" yaml:"preferred_prefixes"`

	// BatchSize defines the number of records per batch for the
	// SQLite export. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ClusterConfig controls truncated-coordinate matching. The widths are
// configurable so over- and under-merging can both be exercised; the
// defaults match the observation log's fixed-width coordinate text.
type ClusterConfig struct {
	// RAPrecision is the number of right-ascension characters compared.
	RAPrecision int `mapstructure:"ra_precision" yaml:"ra_precision"`

	// DecPrecision is the number of declination characters compared.
	DecPrecision int `mapstructure:"dec_precision" yaml:"dec_precision"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
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
		Catalog: CatalogConfig{
			PreferredPrefixes: []string{
				"2MASS", "Gaia DR3", "Gaia DR2", "TOI",
			},
			BatchSize: 10_000,
		},
		Cluster: ClusterConfig{
			RAPrecision:  7,
			DecPrecision: 6,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
