package catalog_test

import (
	"testing"

	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func testInputs() (
	[]catalog.PlanetRecord,
	[]catalog.PlanetRecord,
	[]cluster.Observation,
	[]alias.Pair,
	[]alias.Pair,
) {
	confirmed := []catalog.PlanetRecord{
		{Planet: "WASP-69 b", Host: "WASP-69", TransitDur: f(2.23)},
		{Planet: "GJ 436 b", Host: "GJ 436", TransitDur: f(1.01)},
		{Planet: "HD 80606 b", Host: "HD 80606"},
	}
	candidates := []catalog.PlanetRecord{
		{Planet: "TOI-741.01", Host: "TOI-741", TransitDur: f(3.12)},
		// same canonical name as a confirmed record
		{Planet: "GJ 436 b", Host: "GJ 436", TransitDur: f(1.00)},
	}
	obs := []cluster.Observation{
		{Name: "WASP-69", RA: "21:00:06.19", Dec: "-05:05:40.1"},
		{Name: "Ross  905", RA: "11:42:11.09", Dec: "+26:42:23.6"},
		{Name: "V1298-TAU", RA: "04:05:19.59", Dec: "+20:09:25.5"},
	}
	planetPairs := []alias.Pair{
		{Alias: "Ross 905 b", Canonical: "GJ 436 b"},
		{Alias: "TOI-5825.01", Canonical: "WASP-69 b"},
	}
	hostPairs := []alias.Pair{
		{Alias: "Ross 905 b", Canonical: "GJ 436 b"},
	}
	return confirmed, candidates, obs, planetPairs, hostPairs
}

func TestAssembleFlags(t *testing.T) {
	confirmed, candidates, obs, planetPairs, hostPairs := testInputs()
	cat, err := catalog.Assemble(
		confirmed, candidates, obs, planetPairs, hostPairs,
		cluster.NewClusterer(),
	)
	require.NoError(t, err)

	// confirmed first, candidate duplicate of GJ 436 b dropped
	require.Len(t, cat.Planets, 4)
	assert.Equal(t, "WASP-69 b", cat.Planets[0].Planet)
	assert.Equal(t, "TOI-741.01", cat.Planets[3].Planet)

	wasp := cat.Planets[0]
	assert.True(t, wasp.IsTransiting)
	assert.True(t, wasp.IsConfirmed)
	assert.True(t, wasp.IsJWST, "host observed and transiting")

	// ROSS 905 resolves to GJ 436 through the host alias table
	gj := cat.Planets[1]
	assert.True(t, gj.IsConfirmed)
	assert.True(t, gj.IsJWST)

	hd := cat.Planets[2]
	assert.False(t, hd.IsTransiting)
	assert.False(t, hd.IsJWST)

	toi := cat.Planets[3]
	assert.False(t, toi.IsConfirmed)
	assert.False(t, toi.IsJWST, "host not in the observation log")
}

// No record may be JWST-observed without being transiting.
func TestAssembleJWSTImpliesTransit(t *testing.T) {
	confirmed := []catalog.PlanetRecord{
		{Planet: "HD 80606 b", Host: "HD 80606"},
	}
	obs := []cluster.Observation{
		{Name: "HD80606", RA: "09:22:37.6", Dec: "+50:36:13"},
	}
	cat, err := catalog.Assemble(
		confirmed, nil, obs, nil, nil, cluster.NewClusterer())
	require.NoError(t, err)

	rec := cat.Planets[0]
	assert.False(t, rec.IsTransiting)
	assert.False(t, rec.IsJWST,
		"non-transiting planets are never marked JWST-observed")
	for _, p := range cat.Planets {
		assert.False(t, p.IsJWST && !p.IsTransiting)
	}
}

func TestAssembleObsCoords(t *testing.T) {
	confirmed, candidates, obs, planetPairs, hostPairs := testInputs()
	cat, err := catalog.Assemble(
		confirmed, candidates, obs, planetPairs, hostPairs,
		cluster.NewClusterer(),
	)
	require.NoError(t, err)

	coords, ok := cat.ObsCoords["WASP-69"]
	require.True(t, ok)
	assert.Equal(t, "21:00:06.19", coords.RA)
	assert.Equal(t, "-05:05:40.1", coords.Dec)

	_, ok = cat.ObsCoords["GJ 436"]
	assert.True(t, ok, "alias-resolved host keeps its observed coordinates")

	_, ok = cat.ObsCoords["HD 80606"]
	assert.False(t, ok, "coordinates attach only to JWST-flagged hosts")
}

func TestAssembleMissing(t *testing.T) {
	confirmed, candidates, obs, planetPairs, hostPairs := testInputs()
	cat, err := catalog.Assemble(
		confirmed, candidates, obs, planetPairs, hostPairs,
		cluster.NewClusterer(),
	)
	require.NoError(t, err)

	// V1298 Tau is observed but absent from both archives
	assert.Equal(t, []string{"V1298 Tau"}, cat.Missing)
}

func TestAssembleAliasBuckets(t *testing.T) {
	confirmed, candidates, obs, planetPairs, hostPairs := testInputs()
	cat, err := catalog.Assemble(
		confirmed, candidates, obs, planetPairs, hostPairs,
		cluster.NewClusterer(),
	)
	require.NoError(t, err)

	assert.Contains(t, cat.JWSTAliases, "Ross 905 b")
	assert.Contains(t, cat.TransitAliases, "TOI-5825.01")
	assert.Contains(t, cat.ConfirmedAliases, "Ross 905 b")
	assert.Empty(t, cat.NonTransitAliases)
	assert.Empty(t, cat.CandidateAliases)
}

func TestAssembleComponentFallback(t *testing.T) {
	confirmed := []catalog.PlanetRecord{
		{Planet: "LTT 1445 b", Host: "LTT 1445", TransitDur: f(1.38)},
	}
	// observation log names the binary component
	obs := []cluster.Observation{
		{Name: "LTT-1445A", RA: "03:01:51.04", Dec: "-16:35:36.1"},
	}
	cat, err := catalog.Assemble(
		confirmed, nil, obs, nil, nil, cluster.NewClusterer())
	require.NoError(t, err)

	assert.Empty(t, cat.Missing)
	assert.True(t, cat.Planets[0].IsJWST)
}

func TestPlanetLookup(t *testing.T) {
	confirmed, candidates, obs, planetPairs, hostPairs := testInputs()
	cat, err := catalog.Assemble(
		confirmed, candidates, obs, planetPairs, hostPairs,
		cluster.NewClusterer(),
	)
	require.NoError(t, err)

	rec, ok := cat.Planet("Ross 905 b")
	require.True(t, ok, "lookup resolves through the alias index")
	assert.Equal(t, "GJ 436 b", rec.Planet)

	_, ok = cat.Planet("Kepler-42 d")
	assert.False(t, ok)
}

// Ambiguous aliases abort assembly with a data-integrity error.
func TestAssembleAmbiguousAlias(t *testing.T) {
	planetPairs := []alias.Pair{
		{Alias: "Ross 905 b", Canonical: "GJ 436 b"},
		{Alias: "Ross 905 b", Canonical: "WASP-69 b"},
	}
	_, err := catalog.Assemble(
		nil, nil, nil, planetPairs, nil, cluster.NewClusterer())
	assert.Error(t, err)
}
