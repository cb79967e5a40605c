// Package ioassemble implements the Assembler interface: it loads the
// configured catalog sources, reconciles them into one assembled
// catalog and persists the snapshot plus the curated alias table.
// This is an impure I/O package; reconciliation itself lives in
// pkg/catalog and pkg/merge.
package ioassemble

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"

	"github.com/exotools/exocat/internal/iocatalog"
	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/cluster"
	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/exocat"
	"github.com/exotools/exocat/pkg/sources"
)

type assembler struct {
	cfg *config.Config
	src sources.Sources
}

// New creates a new Assembler.
func New(cfg *config.Config, src sources.Sources) exocat.Assembler {
	return &assembler{cfg: cfg, src: src}
}

// Assemble runs the batch pipeline: sources config, input loading,
// reconciliation, artifacts.
func (a *assembler) Assemble(
	ctx context.Context,
) (*catalog.AssembledCatalog, error) {
	startTime := time.Now()
	slog.Info("Starting catalog assembly")

	gn.Info("(1/4) Loading sources configuration...")
	sourcesConfig, err := a.src.Load()
	if err != nil {
		return nil, err
	}

	gn.Info("(2/4) Loading catalog inputs...")
	inputs, err := iocatalog.LoadAll(ctx, *a.cfg, sourcesConfig)
	if err != nil {
		return nil, err
	}
	slog.Info("Inputs loaded",
		"confirmed", len(inputs.Confirmed),
		"candidates", len(inputs.Candidates),
		"observations", len(inputs.Observations),
		"planet_aliases", len(inputs.PlanetPairs),
		"host_aliases", len(inputs.HostPairs),
	)

	gn.Info("(3/4) Reconciling records...")
	cl := cluster.Clusterer{
		RAPrecision:  a.cfg.Cluster.RAPrecision,
		DecPrecision: a.cfg.Cluster.DecPrecision,
	}
	cat, err := catalog.Assemble(
		inputs.Confirmed, inputs.Candidates, inputs.Observations,
		inputs.PlanetPairs, inputs.HostPairs, cl,
	)
	if err != nil {
		return nil, AssembleError(err)
	}
	for _, host := range cat.Missing {
		slog.Warn("Observed host not found in catalog", "host", host)
	}
	gn.Message("<em>Reconciled %s planets</em>",
		humanize.Comma(int64(len(cat.Planets))))

	gn.Info("(4/4) Writing catalog artifacts...")
	if err = a.writeArtifacts(cat); err != nil {
		return nil, err
	}

	duration := time.Since(startTime)
	slog.Info("Assembly complete",
		"planets", len(cat.Planets),
		"unresolved_hosts", len(cat.Missing),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Assembly complete
Planets: %s, unresolved observed hosts: %d.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(len(cat.Planets))),
		len(cat.Missing),
		gnfmt.TimeString(duration.Seconds()),
	)
	return cat, nil
}

// writeArtifacts persists the curated alias table and the catalog
// snapshot under the data directory.
func (a *assembler) writeArtifacts(cat *catalog.AssembledCatalog) error {
	curated, err := curateAliases(cat.PlanetAliases)
	if err != nil {
		return err
	}

	aliasesPath := config.AliasesFilePath(a.cfg.HomeDir)
	if err = iocatalog.WriteAliasTable(aliasesPath, curated); err != nil {
		return err
	}
	slog.Info("Wrote curated alias table",
		"path", aliasesPath, "aliases", curated.Len())

	snapshotPath := config.SnapshotFilePath(a.cfg.HomeDir)
	if err = writeSnapshot(snapshotPath, cat); err != nil {
		return err
	}
	slog.Info("Wrote catalog snapshot", "path", snapshotPath)
	return nil
}

// LoadSnapshot decodes a previously assembled catalog.
func (a *assembler) LoadSnapshot() (*catalog.AssembledCatalog, error) {
	return readSnapshot(config.SnapshotFilePath(a.cfg.HomeDir))
}
