// Package ioexport writes an assembled catalog into a single-file
// SQLite database so downstream tools can query targets and aliases
// without decoding the catalog snapshot.
package ioexport

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	_ "modernc.org/sqlite"

	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/exocat"
)

type exporter struct {
	cfg *config.Config
}

// New creates a new Exporter.
func New(cfg *config.Config) exocat.Exporter {
	return &exporter{cfg: cfg}
}

// Export writes the catalog into the SQLite artifact, replacing any
// previous export.
func (e *exporter) Export(
	ctx context.Context,
	cat *catalog.AssembledCatalog,
) error {
	startTime := time.Now()
	path := config.ExportFilePath(e.cfg.HomeDir)

	// A previous artifact is stale the moment a new assembly exists.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return ConnectionError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ConnectionError(path, err)
	}
	defer db.Close()

	gn.Info("(1/3) Creating schema...")
	if err = createSchema(ctx, db); err != nil {
		return SchemaError(path, err)
	}

	gn.Info("(2/3) Inserting targets...")
	if err = e.insertTargets(ctx, db, cat.Planets); err != nil {
		return InsertError("targets", err)
	}
	gn.Message("<em>Inserted %s targets</em>",
		humanize.Comma(int64(len(cat.Planets))))

	gn.Info("(3/3) Inserting aliases and observations...")
	aliasCount, err := e.insertAliases(ctx, db, cat)
	if err != nil {
		return InsertError("aliases", err)
	}
	if err = e.insertObservations(ctx, db, cat.ObsCoords); err != nil {
		return InsertError("observations", err)
	}

	duration := time.Since(startTime)
	slog.Info("Export complete",
		"path", path,
		"targets", len(cat.Planets),
		"aliases", aliasCount,
		"observations", len(cat.ObsCoords),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Export complete
Targets: %s, aliases: %s.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(len(cat.Planets))),
		humanize.Comma(int64(aliasCount)),
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

const schemaSQL = `
CREATE TABLE targets (
  id TEXT PRIMARY KEY,
  planet TEXT NOT NULL UNIQUE,
  host TEXT NOT NULL,
  ra REAL, dec REAL, ks_mag REAL,
  teff REAL, log_g REAL, metallicity REAL,
  r_star REAL, m_star REAL,
  transit_dur REAL, r_planet REAL, m_planet REAL,
  period REAL, sma REAL, rat_dor REAL, rat_ror REAL, teq REAL,
  is_transiting INTEGER NOT NULL,
  is_confirmed INTEGER NOT NULL,
  is_jwst INTEGER NOT NULL
);

CREATE TABLE aliases (
  id TEXT NOT NULL,
  alias TEXT NOT NULL,
  canonical TEXT NOT NULL,
  kind TEXT NOT NULL
);
CREATE INDEX aliases_alias_idx ON aliases (alias);
CREATE INDEX aliases_canonical_idx ON aliases (canonical);

CREATE TABLE observations (
  host TEXT PRIMARY KEY,
  ra TEXT NOT NULL,
  dec TEXT NOT NULL
);
`

// newProgressBar creates a progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
