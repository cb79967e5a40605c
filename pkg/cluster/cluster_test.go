package cluster_test

import (
	"testing"

	"github.com/exotools/exocat/pkg/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster(t *testing.T) {
	rows := []cluster.Observation{
		{Name: "WASP-69", RA: "21:00:06.19", Dec: "-05:05:40.1"},
		{Name: "HD 189733", RA: "20:00:43.71", Dec: "+22:42:39.1"},
		// same truncated keys as WASP-69, different name string
		{Name: "WASP69", RA: "21:00:06.30", Dec: "-05:05:41.9"},
	}

	c := cluster.NewClusterer()
	clusters := c.Cluster(rows)
	require.Len(t, clusters, 2)

	assert.Equal(t, []string{"WASP-69", "WASP69"}, clusters[0].Names)
	assert.Equal(t, "21:00:0", clusters[0].RA)
	assert.Equal(t, "-05:05", clusters[0].Dec)
	assert.Equal(t, []string{"HD 189733"}, clusters[1].Names)
}

// Non-adjacent rows with equal truncated keys still merge.
func TestClusterNonAdjacent(t *testing.T) {
	rows := []cluster.Observation{
		{Name: "GJ 1214", RA: "17:15:18.94", Dec: "+04:57:49.7"},
		{Name: "HD 209458", RA: "22:03:10.77", Dec: "+18:53:03.5"},
		{Name: "GJ1214", RA: "17:15:18.10", Dec: "+04:57:50.0"},
	}
	clusters := cluster.NewClusterer().Cluster(rows)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"GJ 1214", "GJ1214"}, clusters[0].Names)
}

// Coarser precision over-merges; finer precision under-merges.
func TestClusterPrecision(t *testing.T) {
	rows := []cluster.Observation{
		{Name: "a", RA: "17:15:18.94", Dec: "+04:57:49.7"},
		{Name: "b", RA: "17:15:28.10", Dec: "+04:57:50.0"},
	}

	coarse := cluster.Clusterer{RAPrecision: 5, DecPrecision: 6}
	assert.Len(t, coarse.Cluster(rows), 1)

	fine := cluster.Clusterer{RAPrecision: 9, DecPrecision: 6}
	assert.Len(t, fine.Cluster(rows), 2)
}

func TestTargets(t *testing.T) {
	rows := []cluster.Observation{
		{Name: "WASP-69", RA: "21:00:06.19", Dec: "-05:05:40.1"},
		{Name: "GJ1214", RA: "17:15:18.94", Dec: "+04:57:49.7"},
		{Name: "GJ 1214", RA: "17:15:18.10", Dec: "+04:57:50.0"},
	}
	targets, coords := cluster.NewClusterer().Targets(rows)

	// normalized, deduplicated, sorted
	assert.Equal(t, []string{"GJ 1214", "WASP-69"}, targets)

	obs, ok := coords["GJ 1214"]
	require.True(t, ok)
	assert.Equal(t, "17:15:18.94", obs.RA, "first observation wins")
}
