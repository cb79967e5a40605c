package iosources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/errcode"
	"github.com/exotools/exocat/pkg/sources"
)

func writeSources(t *testing.T, home, yaml string) {
	t.Helper()
	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	confirmed := filepath.Join(home, "confirmed.txt")
	require.NoError(t, os.WriteFile(confirmed, []byte(""), 0644))

	writeSources(t, home, `
data_sources:
  - id: 1
    kind: confirmed
    path: `+confirmed+`
    format: targets
`)

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	sc, err := New(cfg).Load()
	require.NoError(t, err)
	require.Len(t, sc.DataSources, 1)
	assert.Equal(t, sources.KindConfirmed, sc.DataSources[0].Kind)
	// absent optional kinds become warnings, not errors
	assert.NotEmpty(t, sc.Warnings)
}

func TestLoadMissingFile(t *testing.T) {
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	_, err := New(cfg).Load()
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SourcesConfigError, gnErr.Code)
}

func TestLoadMissingInput(t *testing.T) {
	home := t.TempDir()
	writeSources(t, home, `
data_sources:
  - id: 1
    kind: confirmed
    path: `+filepath.Join(home, "no-such.txt")+`
    format: targets
`)

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	_, err := New(cfg).Load()
	assert.Error(t, err)
}
