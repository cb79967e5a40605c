package ioexport

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/gnames/gnuuid"

	"github.com/exotools/exocat/pkg/catalog"
)

const targetCols = 22

func (e *exporter) insertTargets(
	ctx context.Context,
	db *sql.DB,
	planets []catalog.PlanetRecord,
) error {
	batchSize := e.cfg.Catalog.BatchSize

	bar := newProgressBar(len(planets), "Inserting targets: ")
	defer bar.Finish()

	for i := 0; i < len(planets); i += batchSize {
		end := min(i+batchSize, len(planets))
		batch := planets[i:end]

		var valueStrings []string
		var valueArgs []any
		for _, p := range batch {
			valueStrings = append(valueStrings,
				"("+strings.TrimSuffix(
					strings.Repeat("?,", targetCols), ",")+")")
			valueArgs = append(valueArgs,
				gnuuid.New(p.Planet).String(), p.Planet, p.Host,
				p.RA, p.Dec, p.KsMag,
				p.Teff, p.LogG, p.Metal, p.Rstar, p.Mstar,
				p.TransitDur, p.Rplanet, p.Mplanet,
				p.Period, p.SMA, p.RatDor, p.RatRor, p.Teq,
				p.IsTransiting, p.IsConfirmed, p.IsJWST,
			)
		}

		query := fmt.Sprintf(
			`INSERT INTO targets (
  id, planet, host,
  ra, dec, ks_mag,
  teff, log_g, metallicity, r_star, m_star,
  transit_dur, r_planet, m_planet,
  period, sma, rat_dor, rat_ror, teq,
  is_transiting, is_confirmed, is_jwst
) VALUES %s`,
			strings.Join(valueStrings, ", "),
		)
		if _, err := db.ExecContext(ctx, query, valueArgs...); err != nil {
			return fmt.Errorf("failed to insert targets batch: %w", err)
		}
		bar.Add(len(batch))
	}
	return nil
}

func (e *exporter) insertAliases(
	ctx context.Context,
	db *sql.DB,
	cat *catalog.AssembledCatalog,
) (int, error) {
	type aliasRow struct {
		alias     string
		canonical string
		kind      string
	}
	var rows []aliasRow
	for _, p := range cat.PlanetAliases.Pairs() {
		rows = append(rows, aliasRow{p.Alias, p.Canonical, "planet"})
	}
	for _, p := range cat.HostAliases.Pairs() {
		rows = append(rows, aliasRow{p.Alias, p.Canonical, "host"})
	}

	batchSize := e.cfg.Catalog.BatchSize
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		batch := rows[i:end]

		var valueStrings []string
		var valueArgs []any
		for _, r := range batch {
			valueStrings = append(valueStrings, "(?, ?, ?, ?)")
			valueArgs = append(valueArgs,
				gnuuid.New(r.alias).String(), r.alias, r.canonical, r.kind)
		}
		query := fmt.Sprintf(
			"INSERT INTO aliases (id, alias, canonical, kind) VALUES %s",
			strings.Join(valueStrings, ", "),
		)
		if _, err := db.ExecContext(ctx, query, valueArgs...); err != nil {
			return 0, fmt.Errorf("failed to insert aliases batch: %w", err)
		}
	}
	return len(rows), nil
}

func (e *exporter) insertObservations(
	ctx context.Context,
	db *sql.DB,
	coords map[string]catalog.Coords,
) error {
	hosts := make([]string, 0, len(coords))
	for host := range coords {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	for _, host := range hosts {
		c := coords[host]
		_, err := db.ExecContext(ctx,
			"INSERT INTO observations (host, ra, dec) VALUES (?, ?, ?)",
			host, c.RA, c.Dec,
		)
		if err != nil {
			return fmt.Errorf("failed to insert observation: %w", err)
		}
	}
	return nil
}
