// Package ioconfig loads configuration from config.yaml and environment
// variables. This is an impure package; the configuration schema and its
// validation live in pkg/config.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/exotools/exocat/pkg/config"
)

// Load reads configuration for the given home directory.
// Precedence from high to low: EXOCAT_* environment variables, the
// config.yaml file, built-in defaults. A missing config file is not an
// error; a malformed one is.
func Load(homeDir string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigFile(config.ConfigFilePath(homeDir))
	v.SetConfigType("yaml")

	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults go in before reading: AutomaticEnv only consults keys
	// viper already knows about.
	defaults := config.New()
	v.SetDefault("catalog.preferred_prefixes", defaults.Catalog.PreferredPrefixes)
	v.SetDefault("catalog.batch_size", defaults.Catalog.BatchSize)
	v.SetDefault("cluster.ra_precision", defaults.Cluster.RAPrecision)
	v.SetDefault("cluster.dec_precision", defaults.Cluster.DecPrecision)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	// With an explicit config file viper reports a plain path error on
	// absence, so check existence first; missing file means defaults.
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, ConfigLoadError(path, err)
		}
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, ConfigLoadError(v.ConfigFileUsed(),
			fmt.Errorf("failed to unmarshal config: %w", err))
	}

	// Route loaded values through the option functions so invalid
	// entries warn and fall back to defaults instead of propagating.
	res := config.New()
	res.Update(fileCfg.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}
