// Package cluster groups observation-log rows into distinct physical
// targets by truncated coordinate keys, independent of naming.
// This is a pure package - clustering is computation, not I/O.
//
// Matching is deliberately coarse: coordinates compare as fixed-width
// text prefixes, not parsed floats, so formatting noise cannot split a
// target. The tradeoff is documented on Cluster: distinct objects that
// share a truncated prefix merge into one cluster.
package cluster

import (
	"sort"

	"github.com/exotools/exocat/pkg/names"
)

// Default truncation widths for sexagesimal coordinate text.
const (
	DefaultRAPrecision  = 7
	DefaultDecPrecision = 6
)

// Observation is one observation-log row: a raw target name plus its
// coordinates as formatted text, exactly as supplied by the source.
type Observation struct {
	Name string
	RA   string
	Dec  string
}

// ObservationCluster is a set of raw names believed to denote the same
// physical host, grouped by truncated coordinate equality.
type ObservationCluster struct {
	RA    string // truncated RA key
	Dec   string // truncated Dec key
	Names []string
}

// Clusterer groups observations by truncated coordinate keys. The
// precisions are configurable so callers can trade false merges
// against false splits.
type Clusterer struct {
	RAPrecision  int
	DecPrecision int
}

// NewClusterer returns a Clusterer with the default truncation widths.
func NewClusterer() Clusterer {
	return Clusterer{
		RAPrecision:  DefaultRAPrecision,
		DecPrecision: DefaultDecPrecision,
	}
}

// Cluster groups rows sharing both truncated coordinate keys. It is a
// single linear scan with taken markers, merging matches regardless of
// position, O(n^2) worst case. Rows for distinct objects whose
// coordinates agree within the truncated prefix are merged incorrectly;
// that false-merge risk is the accepted cost of format-tolerant
// matching, not a bug.
func (c Clusterer) Cluster(rows []Observation) []ObservationCluster {
	taken := make([]bool, len(rows))
	var res []ObservationCluster

	for i := range rows {
		if taken[i] {
			continue
		}
		taken[i] = true
		ra := truncate(rows[i].RA, c.RAPrecision)
		dec := truncate(rows[i].Dec, c.DecPrecision)
		oc := ObservationCluster{
			RA:    ra,
			Dec:   dec,
			Names: []string{rows[i].Name},
		}
		for j := i + 1; j < len(rows); j++ {
			if taken[j] {
				continue
			}
			if truncate(rows[j].RA, c.RAPrecision) == ra &&
				truncate(rows[j].Dec, c.DecPrecision) == dec {
				oc.Names = append(oc.Names, rows[j].Name)
				taken[j] = true
			}
		}
		res = append(res, oc)
	}
	return res
}

// Targets returns the deduplicated, normalized set of observed host
// names, sorted, plus a lookup from each normalized name to the
// coordinate text of its first observation. Cluster membership itself
// is discovery-time diagnostic output; only the name set and the
// coordinates persist.
func (c Clusterer) Targets(rows []Observation) ([]string, map[string]Observation) {
	coords := make(map[string]Observation)
	seen := make(map[string]bool)
	var targets []string

	for _, oc := range c.Cluster(rows) {
		for _, raw := range oc.Names {
			name := names.Normalize(raw)
			if seen[name] {
				continue
			}
			seen[name] = true
			targets = append(targets, name)
		}
	}
	for _, row := range rows {
		name := names.Normalize(row.Name)
		if _, ok := coords[name]; !ok {
			coords[name] = row
		}
	}
	sort.Strings(targets)
	return targets, coords
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
