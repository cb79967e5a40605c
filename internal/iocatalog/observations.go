package iocatalog

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strings"

	"github.com/exotools/exocat/pkg/cluster"
)

// Observation-log column headers.
const (
	colTarget = "Target"
	colRA     = "R.A. 2000"
	colDec    = "Dec. 2000"
)

// ReadObservations loads the telescope observation log, a CSV with at
// least Target, R.A. 2000 and Dec. 2000 columns. Lines starting with
// '#' are comments. Rows too short for the required columns are
// skipped with a diagnostic.
func ReadObservations(path string) ([]cluster.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ObservationsReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, ObservationsDecodeError(path, err)
	}
	if len(rows) == 0 {
		return nil, ObservationsHeaderError(path, "empty file")
	}

	idx := make(map[string]int)
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{colTarget, colRA, colDec} {
		if _, ok := idx[col]; !ok {
			return nil, ObservationsHeaderError(path, "missing column "+col)
		}
	}

	maxIdx := max(idx[colTarget], idx[colRA], idx[colDec])
	var res []cluster.Observation
	for i, row := range rows[1:] {
		if len(row) <= maxIdx {
			slog.Warn("Observation row too short, skipping",
				"file", path, "line_number", i+2, "fields", len(row))
			continue
		}
		name := strings.TrimSpace(row[idx[colTarget]])
		if name == "" {
			continue
		}
		res = append(res, cluster.Observation{
			Name: name,
			RA:   strings.TrimSpace(row[idx[colRA]]),
			Dec:  strings.TrimSpace(row[idx[colDec]]),
		})
	}
	return res, nil
}
