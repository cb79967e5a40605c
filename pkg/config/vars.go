package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "exocat"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/exocat by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/exocat by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for assembled catalog artifacts.
// Returns ~/.local/share/exocat/data by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "data")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/exocat/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

// SnapshotFilePath returns the path of the assembled-catalog snapshot.
func SnapshotFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "catalog.json")
}

// AliasesFilePath returns the path of the curated alias table emitted
// by assembly.
func AliasesFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "aliases.txt")
}

// ExportFilePath returns the path of the SQLite export artifact.
func ExportFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "catalog.sqlite")
}
