// Package sources provides configuration and validation for catalog
// input sources.
//
// This package defines the schema for sources.yaml, which lists the
// already-fetched input files the assembly consumes: the confirmed and
// candidate planet archives, the telescope observation log, and the
// persisted alias tables. It handles validation and filtering; reading
// the files themselves is internal/iocatalog's job.
package sources

// Source kinds. Exactly one source per kind is expected.
const (
	KindConfirmed     = "confirmed"
	KindCandidates    = "candidates"
	KindObservations  = "observations"
	KindPlanetAliases = "planet_aliases"
	KindHostAliases   = "host_aliases"
)

// Formats of archive sources. The candidates and confirmed archives
// come either as the merged targets text or as a raw JSON dump with
// per-facility duplicate rows still present.
const (
	FormatTargets = "targets"
	FormatRaw     = "raw"
	FormatCSV     = "csv"
	FormatTable   = "table"
)

// Sources loads and validates the sources.yaml configuration.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// DataSources is the list of catalog inputs to assemble from.
	DataSources []SourceConfig `yaml:"data_sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	SourceID   int    // ID of the data source
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// SourceConfig represents configuration for a single catalog input.
type SourceConfig struct {
	// ID identifies the source in logs and diagnostics.
	ID int `yaml:"id"`

	// Kind is one of confirmed, candidates, observations,
	// planet_aliases, host_aliases.
	Kind string `yaml:"kind"`

	// Path points to the input file on the local file system. The
	// fetch layer is responsible for having placed it there.
	Path string `yaml:"path"`

	// Title is an optional human-readable label.
	Title string `yaml:"title,omitempty"`

	// Format overrides the default file format for the kind:
	// targets|raw for the archives, csv for observations, table for
	// alias files.
	Format string `yaml:"format,omitempty"`
}

// ByKind returns the first source of a kind.
func (sc *SourcesConfig) ByKind(kind string) (SourceConfig, bool) {
	for _, s := range sc.DataSources {
		if s.Kind == kind {
			return s, true
		}
	}
	return SourceConfig{}, false
}
