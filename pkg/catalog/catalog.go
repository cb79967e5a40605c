// Package catalog assembles the unified target catalog from the
// confirmed-planet archive, the candidate archive and the telescope
// observation log.
// This is a pure package - assembly is computation, not I/O.
//
// Assembly is a single-pass batch computation over fully materialized
// inputs. The result is immutable once returned and safe to share
// read-only.
package catalog

import (
	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/merge"
)

// Coords is one observation-log coordinate pair, kept as the formatted
// text the log supplied.
type Coords struct {
	RA  string
	Dec string
}

// PlanetRecord is one physical planet, identified by its canonical
// name. Pointer fields are nil when unknown. Records are owned by the
// assembled catalog and never shared outside it.
type PlanetRecord struct {
	Planet string
	Host   string

	RA    *float64
	Dec   *float64
	KsMag *float64

	Teff  *float64
	LogG  *float64
	Metal *float64
	Rstar *float64
	Mstar *float64

	TransitDur *float64
	Rplanet    *float64
	Mplanet    *float64
	Period     *float64
	SMA        *float64
	RatDor     *float64
	RatRor     *float64
	Teq        *float64

	IsTransiting bool
	IsConfirmed  bool
	IsJWST       bool
}

// FromEntry converts a merged archive entry into a catalog record.
// Flags are derived later, during assembly.
func FromEntry(e merge.Entry) PlanetRecord {
	return PlanetRecord{
		Planet: e.Planet,
		Host:   e.Host,
		RA:     e.RA,
		Dec:    e.Dec,
		KsMag:  e.KsMag,
		Teff:   e.Teff,
		LogG:   e.LogG,
		Metal:  e.Metal,
		Rstar:  e.Rstar,
		Mstar:  e.Mstar,

		TransitDur: e.TransitDur,
		Rplanet:    e.Rplanet,
		Mplanet:    e.Mplanet,
		Period:     e.Period,
		SMA:        e.SMA,
		RatDor:     e.RatDor,
		RatRor:     e.RatRor,
		Teq:        e.Teq,
	}
}

// AssembledCatalog is the assembly output: planet records with
// confirmed entries ordered first, both alias indices, and the
// observation-log coordinate lookup for JWST-observed hosts.
type AssembledCatalog struct {
	Planets []PlanetRecord

	PlanetAliases *alias.Index
	HostAliases   *alias.Index

	// ObsCoords maps host canonical names to observation-log
	// coordinates; populated only for hosts of IsJWST records.
	ObsCoords map[string]Coords

	// Missing lists observed hosts that resolved to no catalog host.
	// Non-fatal: they are excluded from IsJWST computation.
	Missing []string

	// Alias buckets for downstream search, classified by the owning
	// record's flags.
	JWSTAliases       []string
	TransitAliases    []string
	NonTransitAliases []string
	ConfirmedAliases  []string
	CandidateAliases  []string
}

// Planet returns the record for a canonical planet name, resolving
// through the alias index first.
func (c *AssembledCatalog) Planet(name string) (PlanetRecord, bool) {
	if canonical, ok := c.PlanetAliases.Resolve(name); ok {
		name = canonical
	}
	for _, p := range c.Planets {
		if p.Planet == name {
			return p, true
		}
	}
	return PlanetRecord{}, false
}
