package alias

import (
	"log/slog"
	"strings"
)

// ParseTable parses the persisted alias table: one canonical name per
// line, `canonical:alias1,alias2,...`. Blank lines and lines starting
// with '#' are ignored. A line without a colon violates the expected
// arity and is skipped with a diagnostic; it never aborts the parse.
func ParseTable(text string) ([]Pair, error) {
	var pairs []Pair
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		loc := strings.Index(line, ":")
		if loc < 0 {
			slog.Warn("Skipping malformed alias line",
				"line_number", i+1, "line", line)
			continue
		}
		canonical := line[:loc]
		for _, a := range strings.Split(strings.TrimSpace(line[loc+1:]), ",") {
			if a == "" {
				continue
			}
			pairs = append(pairs, Pair{Alias: a, Canonical: canonical})
		}
	}
	return pairs, nil
}
