// Package iocatalog reads and writes the catalog input files: the
// targets text format of the planet archives, raw archive JSON dumps,
// the persisted alias tables and the observation-log CSV.
// This is an impure I/O package; all parsing into domain values happens
// here, the core packages never touch files.
package iocatalog

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/exotools/exocat/pkg/catalog"
)

// ReadTargets parses the targets text format: one '>' host header row
// carrying the stellar values, followed by one indented detail row per
// planet. 'None' is the null sentinel for any numeric field. A row
// with the wrong field arity is skipped with a diagnostic; parsing
// never aborts on malformed rows.
//
//	>WASP-69: 315.0259 -5.0946 7.459 0.813 0.826 4715.0 4.500 0.150
//	 WASP-69 b: 2.23 10.84 82.63 0.04525 3.8681382 963.0
func ReadTargets(path string) ([]catalog.PlanetRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, TargetsReadError(path, err)
	}

	var res []catalog.PlanetRecord
	var host hostHeader
	var hasHost bool

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		switch {
		case strings.HasPrefix(line, ">"):
			h, ok := parseHostHeader(path, i+1, line)
			if !ok {
				hasHost = false
				continue
			}
			host = h
			hasHost = true
		case strings.HasPrefix(line, " "):
			if !hasHost {
				slog.Warn("Planet row before any host header, skipping",
					"file", path, "line_number", i+1)
				continue
			}
			if rec, ok := parsePlanetRow(path, i+1, line, host); ok {
				res = append(res, rec)
			}
		default:
			slog.Warn("Unrecognized targets line, skipping",
				"file", path, "line_number", i+1)
		}
	}
	return res, nil
}

type hostHeader struct {
	name string
	vals [8]*float64 // ra dec ksmag rstar mstar teff logg metal
}

func parseHostHeader(path string, lineNum int, line string) (hostHeader, bool) {
	var h hostHeader
	loc := strings.Index(line, ":")
	if loc < 0 {
		slog.Warn("Host header without separator, skipping",
			"file", path, "line_number", lineNum)
		return h, false
	}
	h.name = line[1:loc]
	fields := strings.Fields(line[loc+1:])
	if len(fields) != len(h.vals) {
		slog.Warn("Host header with wrong field count, skipping",
			"file", path, "line_number", lineNum,
			"want", len(h.vals), "got", len(fields))
		return h, false
	}
	for i, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			slog.Warn("Host header with bad numeric field, skipping",
				"file", path, "line_number", lineNum, "field", f)
			return h, false
		}
		h.vals[i] = v
	}
	return h, true
}

func parsePlanetRow(
	path string, lineNum int, line string, host hostHeader,
) (catalog.PlanetRecord, bool) {
	var rec catalog.PlanetRecord
	loc := strings.Index(line, ":")
	if loc < 0 {
		slog.Warn("Planet row without separator, skipping",
			"file", path, "line_number", lineNum)
		return rec, false
	}
	name := strings.TrimSpace(line[1:loc])
	fields := strings.Fields(line[loc+1:])
	// trdur rplanet mplanet sma period teq
	vals := make([]*float64, 6)
	if len(fields) != len(vals) {
		slog.Warn("Planet row with wrong field count, skipping",
			"file", path, "line_number", lineNum,
			"want", len(vals), "got", len(fields))
		return rec, false
	}
	for i, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			slog.Warn("Planet row with bad numeric field, skipping",
				"file", path, "line_number", lineNum, "field", f)
			return rec, false
		}
		vals[i] = v
	}

	rec = catalog.PlanetRecord{
		Planet: name,
		Host:   host.name,
		RA:     host.vals[0],
		Dec:    host.vals[1],
		KsMag:  host.vals[2],
		Rstar:  host.vals[3],
		Mstar:  host.vals[4],
		Teff:   host.vals[5],
		LogG:   host.vals[6],
		Metal:  host.vals[7],

		TransitDur: vals[0],
		Rplanet:    vals[1],
		Mplanet:    vals[2],
		SMA:        vals[3],
		Period:     vals[4],
		Teq:        vals[5],
	}
	return rec, true
}

// WriteTargets emits records in the targets text format, writing a new
// host header whenever the host changes. Reading the output yields the
// same records.
func WriteTargets(path string, records []catalog.PlanetRecord) error {
	var sb strings.Builder
	prevHost := ""
	for _, rec := range records {
		if rec.Host != prevHost {
			prevHost = rec.Host
			fmt.Fprintf(&sb, ">%s: %s %s %s %s %s %s %s %s\n",
				rec.Host,
				formatValue(rec.RA), formatValue(rec.Dec),
				formatValue(rec.KsMag), formatValue(rec.Rstar),
				formatValue(rec.Mstar), formatValue(rec.Teff),
				formatValue(rec.LogG), formatValue(rec.Metal),
			)
		}
		fmt.Fprintf(&sb, " %s: %s %s %s %s %s %s\n",
			rec.Planet,
			formatValue(rec.TransitDur), formatValue(rec.Rplanet),
			formatValue(rec.Mplanet), formatValue(rec.SMA),
			formatValue(rec.Period), formatValue(rec.Teq),
		)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return TargetsWriteError(path, err)
	}
	return nil
}

// parseValue converts a field to nil (the 'None' sentinel) or a float.
func parseValue(s string) (*float64, error) {
	if s == "None" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func formatValue(v *float64) string {
	if v == nil {
		return "None"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
