package iocatalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/cluster"
	"github.com/exotools/exocat/pkg/config"
	"github.com/exotools/exocat/pkg/sources"
)

// Inputs holds all materialized catalog inputs. Absent optional
// sources leave their slice nil.
type Inputs struct {
	Confirmed    []catalog.PlanetRecord
	Candidates   []catalog.PlanetRecord
	Observations []cluster.Observation
	PlanetPairs  []alias.Pair
	HostPairs    []alias.Pair
}

// LoadAll reads every configured source concurrently, one goroutine per
// source, bounded by the configured jobs number. The first failure
// cancels the rest.
func LoadAll(
	ctx context.Context,
	cfg config.Config,
	sc *sources.SourcesConfig,
) (*Inputs, error) {
	res := &Inputs{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)

	loaders := []struct {
		kind string
		load func(src sources.SourceConfig) error
	}{
		{sources.KindConfirmed, func(src sources.SourceConfig) error {
			recs, err := readArchive(src)
			res.Confirmed = recs
			return err
		}},
		{sources.KindCandidates, func(src sources.SourceConfig) error {
			recs, err := readArchive(src)
			res.Candidates = recs
			return err
		}},
		{sources.KindObservations, func(src sources.SourceConfig) error {
			obs, err := ReadObservations(expandHome(src.Path))
			res.Observations = obs
			return err
		}},
		{sources.KindPlanetAliases, func(src sources.SourceConfig) error {
			pairs, err := ReadAliasPairs(expandHome(src.Path))
			res.PlanetPairs = pairs
			return err
		}},
		{sources.KindHostAliases, func(src sources.SourceConfig) error {
			pairs, err := ReadAliasPairs(expandHome(src.Path))
			res.HostPairs = pairs
			return err
		}},
	}

	for _, l := range loaders {
		src, ok := sc.ByKind(l.kind)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slog.Info("Loading source",
				"kind", l.kind, "path", src.Path)
			return l.load(src)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// readArchive dispatches on the archive format: the merged targets text
// or a raw JSON dump.
func readArchive(src sources.SourceConfig) ([]catalog.PlanetRecord, error) {
	path := expandHome(src.Path)
	if src.Format == sources.FormatRaw {
		return ReadRawDump(path)
	}
	return ReadTargets(path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
