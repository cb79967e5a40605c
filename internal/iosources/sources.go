// Package iosources loads and validates the sources.yaml configuration
// from disk. This is an impure package; schema validation itself lives
// in pkg/sources.
package iosources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/sources"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

// loadSourcesConfig reads sources.yaml, validates the schema and checks
// that every configured input file actually exists.
func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var sc sources.SourcesConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if err := validateSourcesFileSystem(&sc); err != nil {
		return nil, err
	}

	for _, w := range sc.Warnings {
		slog.Warn("Source configuration warning",
			"source_id", w.SourceID,
			"field", w.Field,
			"message", w.Message,
			"suggestion", w.Suggestion)
	}

	return &sc, nil
}

// validateSourcesFileSystem checks that every source path points at an
// existing regular file. Fetching is out of scope, so a missing input is
// a configuration error, not a download trigger.
func validateSourcesFileSystem(sc *sources.SourcesConfig) error {
	for i, ds := range sc.DataSources {
		path := ds.Path
		if strings.HasPrefix(path, "~/") {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf(
					"data source %d: failed to expand ~: %w", i+1, err)
			}
			path = filepath.Join(homeDir, path[2:])
		}

		stat, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf(
				"data source %d: input file does not exist: %s",
				i+1, ds.Path)
		}
		if err != nil {
			return fmt.Errorf(
				"data source %d: failed to check input file: %w", i+1, err)
		}
		if stat.IsDir() {
			return fmt.Errorf(
				"data source %d: input path is a directory: %s",
				i+1, ds.Path)
		}
	}
	return nil
}
