package ioassemble

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exotools/exocat/internal/iosources"
	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/errcode"
)

const confirmedSample = `>WASP-69: 315.0259 -5.0946 7.459 0.813 0.826 4715.0 4.5 0.15
 WASP-69 b: 2.23 10.84 82.63 0.04525 3.8681382 963.0
>GJ 436: 175.5463 26.7066 6.073 0.425 0.445 3477.0 4.8 None
 GJ 436 b: 1.03 4.17 21.4 0.028 2.64389803 686.0
`

const candidatesSample = `>TOI-741: 120.0 -40.0 9.1 0.9 0.88 5300.0 4.5 0.0
 TOI-741.01: 3.1 11.2 None 0.05 4.2 None
`

const observationsSample = `Target,R.A. 2000,Dec. 2000
WASP-69,21:00:06.19,-05:05:40.1
`

func setupHome(t *testing.T) (string, *config.Config) {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(config.ConfigDir(home), 0755))
	require.NoError(t, os.MkdirAll(config.DataDir(home), 0755))

	write := func(name, data string) string {
		path := filepath.Join(home, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
		return path
	}
	confirmed := write("confirmed.txt", confirmedSample)
	candidates := write("candidates.txt", candidatesSample)
	obs := write("observations.csv", observationsSample)
	planetAliases := write("planet_aliases.txt",
		"WASP-69 b:BD-05 5432 b,WASP-69.01\nGJ 436 b:Ross 905 b\n")
	hostAliases := write("host_aliases.txt", "GJ 436:Ross 905\n")

	sourcesYAML := `
data_sources:
  - id: 1
    kind: confirmed
    path: ` + confirmed + `
    format: targets
  - id: 2
    kind: candidates
    path: ` + candidates + `
    format: targets
  - id: 3
    kind: observations
    path: ` + obs + `
    format: csv
  - id: 4
    kind: planet_aliases
    path: ` + planetAliases + `
    format: table
  - id: 5
    kind: host_aliases
    path: ` + hostAliases + `
    format: table
`
	sourcesPath := config.SourcesFilePath(home)
	require.NoError(t, os.WriteFile(sourcesPath, []byte(sourcesYAML), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return home, cfg
}

func TestAssemble(t *testing.T) {
	home, cfg := setupHome(t)
	a := New(cfg, iosources.New(cfg))

	cat, err := a.Assemble(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Planets, 3)

	wasp, ok := cat.Planet("WASP-69 b")
	require.True(t, ok)
	assert.True(t, wasp.IsConfirmed)
	assert.True(t, wasp.IsTransiting)
	assert.True(t, wasp.IsJWST)

	gj, ok := cat.Planet("Ross 905 b")
	require.True(t, ok)
	assert.Equal(t, "GJ 436 b", gj.Planet)
	assert.True(t, gj.IsConfirmed)
	assert.False(t, gj.IsJWST)

	toi, ok := cat.Planet("TOI-741.01")
	require.True(t, ok)
	assert.False(t, toi.IsConfirmed)

	// artifacts land in the data directory
	assert.FileExists(t, config.AliasesFilePath(home))
	assert.FileExists(t, config.SnapshotFilePath(home))
}

func TestAssembleCuratesAliasTable(t *testing.T) {
	home, cfg := setupHome(t)
	a := New(cfg, iosources.New(cfg))
	_, err := a.Assemble(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(config.AliasesFilePath(home))
	require.NoError(t, err)
	// the stale candidate designation is curated away, the letter
	// alias survives
	assert.Contains(t, string(data), "BD-05 5432 b")
	assert.NotContains(t, string(data), "WASP-69.01")
}

func TestSnapshotRoundTrip(t *testing.T) {
	_, cfg := setupHome(t)
	a := New(cfg, iosources.New(cfg))
	cat, err := a.Assemble(context.Background())
	require.NoError(t, err)

	loaded, err := a.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, cat.Planets, loaded.Planets)

	// alias indices survive the round trip
	p, ok := loaded.Planet("Ross 905 b")
	require.True(t, ok)
	assert.Equal(t, "GJ 436 b", p.Planet)
	assert.Equal(t, cat.ObsCoords, loaded.ObsCoords)

	// a known-zero value stays zero instead of degrading to unknown
	toi, ok := loaded.Planet("TOI-741.01")
	require.True(t, ok)
	require.NotNil(t, toi.Metal)
	assert.Equal(t, 0.0, *toi.Metal)
}

func TestLoadSnapshotMissing(t *testing.T) {
	_, cfg := setupHome(t)
	a := New(cfg, iosources.New(cfg))

	_, err := a.LoadSnapshot()
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SnapshotNotFoundError, gnErr.Code)
}

func TestCurateAliases(t *testing.T) {
	ix, err := alias.New([]alias.Pair{
		{Alias: "TOI-1696.01", Canonical: "TOI-1696 b"},
		{Alias: "TIC 77156829 b", Canonical: "TOI-1696 b"},
		{Alias: "TIC 123.01", Canonical: "TOI-741.01"},
	}, false)
	require.NoError(t, err)

	curated, err := curateAliases(ix)
	require.NoError(t, err)

	// confirmed planet loses its dot-suffix alias
	_, ok := curated.Resolve("TOI-1696.01")
	assert.False(t, ok)
	canonical, ok := curated.Resolve("TIC 77156829 b")
	require.True(t, ok)
	assert.Equal(t, "TOI-1696 b", canonical)

	// unconfirmed candidate keeps its dot-suffix alias
	canonical, ok = curated.Resolve("TIC 123.01")
	require.True(t, ok)
	assert.Equal(t, "TOI-741.01", canonical)
}
