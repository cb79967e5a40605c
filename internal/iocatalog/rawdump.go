package iocatalog

import (
	"os"

	"github.com/gnames/gnfmt"

	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/merge"
	"github.com/exotools/exocat/pkg/names"
)

// rawEntry mirrors one row of an archive JSON dump, using the archive's
// own column names.
type rawEntry struct {
	PlName      string   `json:"pl_name"`
	Hostname    string   `json:"hostname"`
	DefaultFlag int      `json:"default_flag"`
	RA          *float64 `json:"ra"`
	Dec         *float64 `json:"dec"`
	SyKmag      *float64 `json:"sy_kmag"`
	StTeff      *float64 `json:"st_teff"`
	StLogg      *float64 `json:"st_logg"`
	StMet       *float64 `json:"st_met"`
	StRad       *float64 `json:"st_rad"`
	StMass      *float64 `json:"st_mass"`
	PlTrandur   *float64 `json:"pl_trandur"`
	PlRade      *float64 `json:"pl_rade"`
	PlMasse     *float64 `json:"pl_masse"`
	PlOrbper    *float64 `json:"pl_orbper"`
	PlOrbsmax   *float64 `json:"pl_orbsmax"`
	PlRatdor    *float64 `json:"pl_ratdor"`
	PlRatror    *float64 `json:"pl_ratror"`
	PlEqt       *float64 `json:"pl_eqt"`
}

func (r rawEntry) toEntry() merge.Entry {
	return merge.Entry{
		Planet:  names.Normalize(r.PlName),
		Host:    names.Normalize(r.Hostname),
		Default: r.DefaultFlag == 1,

		RA:    r.RA,
		Dec:   r.Dec,
		KsMag: r.SyKmag,

		Teff:  r.StTeff,
		LogG:  r.StLogg,
		Metal: r.StMet,
		Rstar: r.StRad,
		Mstar: r.StMass,

		TransitDur: r.PlTrandur,
		Rplanet:    r.PlRade,
		Mplanet:    r.PlMasse,
		Period:     r.PlOrbper,
		SMA:        r.PlOrbsmax,
		RatDor:     r.PlRatdor,
		RatRor:     r.PlRatror,
		Teq:        r.PlEqt,
	}
}

// ReadRawDump loads an archive JSON dump, normalizes names, groups the
// rows by canonical planet name preserving first-seen order and merges
// each group into one record.
func ReadRawDump(path string) ([]catalog.PlanetRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, RawDumpReadError(path, err)
	}

	enc := gnfmt.GNjson{}
	var rows []rawEntry
	if err := enc.Decode(data, &rows); err != nil {
		return nil, RawDumpDecodeError(path, err)
	}

	groups := make(map[string][]merge.Entry)
	var order []string
	for _, row := range rows {
		e := row.toEntry()
		if e.Planet == "" {
			continue
		}
		if _, ok := groups[e.Planet]; !ok {
			order = append(order, e.Planet)
		}
		groups[e.Planet] = append(groups[e.Planet], e)
	}

	res := make([]catalog.PlanetRecord, 0, len(order))
	for _, name := range order {
		res = append(res, catalog.FromEntry(merge.Merge(groups[name])))
	}
	return res, nil
}
