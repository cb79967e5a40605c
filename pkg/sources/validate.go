package sources

import (
	"fmt"
)

// Validate checks the configuration for errors and applies defaults.
func (c *SourcesConfig) Validate() error {
	if len(c.DataSources) == 0 {
		return fmt.Errorf("no data sources specified in configuration")
	}

	seenIDs := make(map[int]bool)
	seenKinds := make(map[string]bool)
	for i := range c.DataSources {
		warnings, err := c.DataSources[i].Validate(i + 1)
		if err != nil {
			return fmt.Errorf("data source %d: %w", i+1, err)
		}
		c.Warnings = append(c.Warnings, warnings...)

		d := &c.DataSources[i]
		if seenIDs[d.ID] {
			return fmt.Errorf("data source %d: duplicate id %d", i+1, d.ID)
		}
		seenIDs[d.ID] = true

		if seenKinds[d.Kind] {
			return fmt.Errorf(
				"data source %d: duplicate kind %q", i+1, d.Kind)
		}
		seenKinds[d.Kind] = true
	}

	// The confirmed archive is the backbone of the catalog; everything
	// else can be absent, producing a thinner assembly.
	if !seenKinds[KindConfirmed] {
		return fmt.Errorf("no source of kind %q configured", KindConfirmed)
	}
	for _, kind := range []string{
		KindCandidates, KindObservations, KindPlanetAliases, KindHostAliases,
	} {
		if !seenKinds[kind] {
			c.Warnings = append(c.Warnings, ValidationWarning{
				Field:   "kind",
				Message: fmt.Sprintf("no source of kind %q", kind),
				Suggestion: fmt.Sprintf(
					"add a %s entry to sources.yaml for a complete catalog",
					kind,
				),
			})
		}
	}

	return nil
}

// Validate checks a single source configuration for data structure
// validity and fills format defaults. File existence is deferred to
// the I/O layer. Returns warnings (non-fatal) and an error (fatal).
func (d *SourceConfig) Validate(index int) ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	if d.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}
	if d.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	valid := map[string][]string{
		KindConfirmed:     {FormatTargets, FormatRaw},
		KindCandidates:    {FormatTargets, FormatRaw},
		KindObservations:  {FormatCSV},
		KindPlanetAliases: {FormatTable},
		KindHostAliases:   {FormatTable},
	}
	formats, ok := valid[d.Kind]
	if !ok {
		return nil, fmt.Errorf("invalid kind %q", d.Kind)
	}

	if d.Format == "" {
		d.Format = formats[0]
		warnings = append(warnings, ValidationWarning{
			SourceID: d.ID,
			Field:    "format",
			Message:  fmt.Sprintf("format not set, assuming %q", d.Format),
			Suggestion: fmt.Sprintf(
				"set 'format' explicitly for kind %q", d.Kind),
		})
		return warnings, nil
	}

	for _, f := range formats {
		if d.Format == f {
			return warnings, nil
		}
	}
	return nil, fmt.Errorf(
		"invalid format %q for kind %q", d.Format, d.Kind)
}
