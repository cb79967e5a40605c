package config

import (
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCatalogPreferredPrefixes sets the alias-selection priority list.
func OptCatalogPreferredPrefixes(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
		if len(res) == 0 {
			gn.Warn("<warn>Preferred Prefixes cannot be empty, keeping previous value</warn>")
			return
		}
		c.Catalog.PreferredPrefixes = res
	}
}

// OptCatalogBatchSize sets the number of records per export batch.
func OptCatalogBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Catalog.BatchSize = i
		}
	}
}

// OptClusterRAPrecision sets the right-ascension truncation width.
func OptClusterRAPrecision(i int) Option {
	return func(c *Config) {
		if isValidInt("RA Precision", i) {
			c.Cluster.RAPrecision = i
		}
	}
}

// OptClusterDecPrecision sets the declination truncation width.
func OptClusterDecPrecision(i int) Option {
	return func(c *Config) {
		if isValidInt("Dec Precision", i) {
			c.Cluster.DecPrecision = i
		}
	}
}

// OptLogFormat sets the log format ('json' or 'text').
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Log Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Log Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets the log destination (file, stdout, stderr).
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Log Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for loading
// input files.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory. Runtime-only, set by the CLI at
// startup.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}

func isValidString(field, s string) bool {
	if s == "" {
		gn.Warn(
			"<warn>%s cannot be empty, keeping previous value</warn>",
			field,
		)
		return false
	}
	return true
}

func isValidInt(field string, i int) bool {
	if i <= 0 {
		gn.Warn(
			"<warn>%s must be positive, keeping previous value</warn>",
			field,
		)
		return false
	}
	return true
}
