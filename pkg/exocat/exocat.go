// Package exocat defines the public interfaces of the catalog curation
// pipeline. Implementations live in internal/io* packages; pure domain
// logic lives in the other pkg/ packages.
package exocat

import (
	"context"

	"github.com/exotools/exocat/pkg/catalog"
)

// Assembler runs the batch assembly: it loads the configured catalog
// sources, reconciles them into one AssembledCatalog, and persists the
// snapshot plus the curated alias table. Assembly is a pure function of
// its inputs; the Assembler only adds the surrounding I/O.
type Assembler interface {
	// Assemble builds the catalog from the sources listed in
	// sources.yaml and writes the snapshot artifacts.
	Assemble(ctx context.Context) (*catalog.AssembledCatalog, error)

	// LoadSnapshot decodes a previously written snapshot.
	LoadSnapshot() (*catalog.AssembledCatalog, error)
}

// Exporter writes an AssembledCatalog into a single-file SQLite
// database for downstream lookups.
type Exporter interface {
	Export(ctx context.Context, cat *catalog.AssembledCatalog) error
}
