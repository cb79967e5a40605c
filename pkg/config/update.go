package config

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if len(c.Catalog.PreferredPrefixes) > 0 {
		res = append(res, OptCatalogPreferredPrefixes(c.Catalog.PreferredPrefixes))
	}
	if c.Catalog.BatchSize > 0 {
		res = append(res, OptCatalogBatchSize(c.Catalog.BatchSize))
	}
	if c.Cluster.RAPrecision > 0 {
		res = append(res, OptClusterRAPrecision(c.Cluster.RAPrecision))
	}
	if c.Cluster.DecPrecision > 0 {
		res = append(res, OptClusterDecPrecision(c.Cluster.DecPrecision))
	}
	if c.Log.Format != "" {
		res = append(res, OptLogFormat(c.Log.Format))
	}
	if c.Log.Level != "" {
		res = append(res, OptLogLevel(c.Log.Level))
	}
	if c.Log.Destination != "" {
		res = append(res, OptLogDestination(c.Log.Destination))
	}
	if c.JobsNumber > 0 {
		res = append(res, OptJobsNumber(c.JobsNumber))
	}

	return res
}
