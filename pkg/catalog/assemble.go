package catalog

import (
	"strings"

	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/cluster"
)

// Assemble reconciles the three sources into one catalog. Confirmed
// records order before candidates; a candidate whose canonical name
// already appears among the confirmed records is dropped (confirmed
// membership wins). Both alias indices are built here and are immutable
// afterwards.
func Assemble(
	confirmed, candidates []PlanetRecord,
	obs []cluster.Observation,
	planetPairs, hostPairs []alias.Pair,
	cl cluster.Clusterer,
) (*AssembledCatalog, error) {
	planetIdx, err := alias.New(planetPairs, false)
	if err != nil {
		return nil, err
	}
	hostIdx, err := alias.New(hostPairs, true)
	if err != nil {
		return nil, err
	}

	res := &AssembledCatalog{
		PlanetAliases: planetIdx,
		HostAliases:   hostIdx,
		ObsCoords:     make(map[string]Coords),
	}

	// Working list: confirmed first, then candidates not already
	// confirmed under the same canonical name.
	seen := make(map[string]bool, len(confirmed))
	confirmedSet := make(map[string]bool, len(confirmed))
	hostSet := make(map[string]bool)
	for _, p := range confirmed {
		if seen[p.Planet] {
			continue
		}
		seen[p.Planet] = true
		confirmedSet[p.Planet] = true
		hostSet[p.Host] = true
		res.Planets = append(res.Planets, p)
	}
	for _, p := range candidates {
		if seen[p.Planet] {
			continue
		}
		seen[p.Planet] = true
		hostSet[p.Host] = true
		res.Planets = append(res.Planets, p)
	}

	observed, obsCoords := resolveObservedHosts(res, obs, hostSet, cl)

	planetsAka := planetIdx.Invert()
	for i := range res.Planets {
		p := &res.Planets[i]
		p.IsTransiting = p.TransitDur != nil
		p.IsConfirmed = confirmedSet[p.Planet]
		p.IsJWST = observed[p.Host] && p.IsTransiting

		if p.IsJWST {
			if c, ok := obsCoords[p.Host]; ok {
				res.ObsCoords[p.Host] = c
			}
		}

		aliases, ok := planetsAka[p.Planet]
		if !ok {
			continue
		}
		if p.IsJWST {
			res.JWSTAliases = append(res.JWSTAliases, aliases...)
		}
		if p.IsTransiting {
			res.TransitAliases = append(res.TransitAliases, aliases...)
		} else {
			res.NonTransitAliases = append(res.NonTransitAliases, aliases...)
		}
		if p.IsConfirmed {
			res.ConfirmedAliases = append(res.ConfirmedAliases, aliases...)
		} else {
			res.CandidateAliases = append(res.CandidateAliases, aliases...)
		}
	}

	return res, nil
}

// resolveObservedHosts clusters the observation log and maps every
// observed host to the catalog's own host spelling. Resolution order:
// direct catalog-host hit, host-alias table, inverted alias graph (try
// every known alias of the observed host against the catalog host
// list), and finally the bare name without a trailing " A" binary
// component. A host resolving nowhere goes to Missing and never marks
// a record JWST-observed.
func resolveObservedHosts(
	res *AssembledCatalog,
	obs []cluster.Observation,
	hostSet map[string]bool,
	cl cluster.Clusterer,
) (map[string]bool, map[string]Coords) {
	targets, coordsByName := cl.Targets(obs)
	hostsAka := res.HostAliases.Invert()

	observed := make(map[string]bool, len(targets))
	obsCoords := make(map[string]Coords, len(targets))

	for _, target := range targets {
		name := resolveOne(target, res, hostsAka, hostSet)
		if !hostSet[name] && strings.HasSuffix(name, " A") {
			base := resolveOne(
				strings.TrimSuffix(name, " A"), res, hostsAka, hostSet)
			if hostSet[base] {
				name = base
			}
		}
		if !hostSet[name] {
			res.Missing = append(res.Missing, target)
			continue
		}
		observed[name] = true
		if row, ok := coordsByName[target]; ok {
			if _, dup := obsCoords[name]; !dup {
				obsCoords[name] = Coords{RA: row.RA, Dec: row.Dec}
			}
		}
	}
	return observed, obsCoords
}

// resolveOne resolves one observed host name: a direct catalog hit
// wins; otherwise the host-alias table, then the inverted alias graph.
func resolveOne(
	name string,
	res *AssembledCatalog,
	hostsAka map[string][]string,
	hostSet map[string]bool,
) string {
	if hostSet[name] {
		return name
	}
	if canonical, ok := res.HostAliases.Resolve(name); ok {
		name = canonical
	}
	if hostSet[name] {
		return name
	}
	return graphLookup(name, hostsAka, hostSet)
}

// graphLookup tries every known alias of name against the catalog host
// set, in discovery order.
func graphLookup(
	name string,
	hostsAka map[string][]string,
	hostSet map[string]bool,
) string {
	for _, h := range hostsAka[name] {
		if hostSet[h] {
			return h
		}
	}
	return name
}
