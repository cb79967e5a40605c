// Package merge reconciles duplicate archive rows for one planet into a
// single best-effort-complete record.
// This is a pure package - merging is computation, not I/O.
//
// Duplicates arise when several observing facilities report the same
// planet to the confirmed archive. The row flagged as the source
// default is the base record; the rest rank by completeness and fill
// remaining gaps, first non-nil value wins. Every numeric field is
// independently nullable: nil means unknown, never zero.
package merge

import (
	"sort"
)

// Entry is one raw archive row. Pointer fields are nil when the source
// reported no value.
type Entry struct {
	Planet  string
	Host    string
	Default bool // source default_flag

	RA    *float64 // deg
	Dec   *float64 // deg
	KsMag *float64

	Teff  *float64 // K
	LogG  *float64
	Metal *float64
	Rstar *float64 // solar radii
	Mstar *float64 // solar masses

	TransitDur *float64 // hours
	Rplanet    *float64 // Earth radii
	Mplanet    *float64 // Earth masses
	Period     *float64 // days
	SMA        *float64 // au
	RatDor     *float64 // a/Rstar
	RatRor     *float64 // Rp/Rstar
	Teq        *float64 // K
}

// Merge combines duplicate rows for one canonical planet name into one
// record. The default-flagged row is the base; the remaining duplicates
// are ranked by completeness (fewest missing fields first, stable) and
// gap-fill the base in rank order. Derived quantities are completed
// before and after gap-filling, matching the archive's own convention
// of publishing partially derived rows.
func Merge(entries []Entry) Entry {
	if len(entries) == 0 {
		return Entry{}
	}

	base := 0
	for i, e := range entries {
		if e.Default {
			base = i
			break
		}
	}
	res := Complete(entries[base])

	dups := make([]Entry, 0, len(entries)-1)
	for i, e := range entries {
		if i != base {
			dups = append(dups, e)
		}
	}
	sort.SliceStable(dups, func(i, j int) bool {
		return penalty(dups[i]) < penalty(dups[j])
	})

	for _, dup := range dups {
		fill(&res, Complete(dup))
	}
	res = Complete(res)
	EquilibriumTemp(&res)
	return res
}

// penalty counts missing fields over the completeness field set. The
// two OR slots count one penalty only when both alternatives are
// missing, since either member recovers the other by a ratio identity.
func penalty(e Entry) int {
	p := 0
	if e.Teff == nil {
		p++
	}
	if e.LogG == nil {
		p++
	}
	if e.Metal == nil {
		p++
	}
	if e.TransitDur == nil {
		p++
	}
	if e.Rplanet == nil {
		p++
	}
	if e.SMA == nil && e.RatDor == nil {
		p++
	}
	if e.Rstar == nil && e.RatRor == nil {
		p++
	}
	return p
}

// fill copies every non-nil field of src into still-nil fields of dst.
// An already-filled field is never overwritten.
func fill(dst *Entry, src Entry) {
	fields := []struct {
		d **float64
		s *float64
	}{
		{&dst.RA, src.RA},
		{&dst.Dec, src.Dec},
		{&dst.KsMag, src.KsMag},
		{&dst.Teff, src.Teff},
		{&dst.LogG, src.LogG},
		{&dst.Metal, src.Metal},
		{&dst.Rstar, src.Rstar},
		{&dst.Mstar, src.Mstar},
		{&dst.TransitDur, src.TransitDur},
		{&dst.Rplanet, src.Rplanet},
		{&dst.Mplanet, src.Mplanet},
		{&dst.Period, src.Period},
		{&dst.SMA, src.SMA},
		{&dst.RatDor, src.RatDor},
		{&dst.RatRor, src.RatRor},
		{&dst.Teq, src.Teq},
	}
	for _, f := range fields {
		if *f.d == nil && f.s != nil {
			v := *f.s
			*f.d = &v
		}
	}
}

// NonNilFields counts the filled numeric fields of an entry. Gap-fill
// is monotonic over this count.
func NonNilFields(e Entry) int {
	n := 0
	for _, f := range []*float64{
		e.RA, e.Dec, e.KsMag, e.Teff, e.LogG, e.Metal, e.Rstar, e.Mstar,
		e.TransitDur, e.Rplanet, e.Mplanet, e.Period, e.SMA, e.RatDor,
		e.RatRor, e.Teq,
	} {
		if f != nil {
			n++
		}
	}
	return n
}
