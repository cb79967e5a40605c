package iofs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exotools/exocat/pkg/config"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.DataDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// idempotent
	require.NoError(t, EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))
	require.NoError(t, EnsureConfigFile(home))

	data, err := os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cluster:")
	assert.Contains(t, string(data), "batch_size:")

	// an existing file is never overwritten
	custom := []byte("log:\n  level: debug\n")
	err = os.WriteFile(config.ConfigFilePath(home), custom, 0644)
	require.NoError(t, err)
	require.NoError(t, EnsureConfigFile(home))
	data, err = os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}

func TestEnsureSourcesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, EnsureDirs(home))
	require.NoError(t, EnsureSourcesFile(home))

	data, err := os.ReadFile(config.SourcesFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_sources:")
	assert.Contains(t, string(data), "kind: confirmed")
}
