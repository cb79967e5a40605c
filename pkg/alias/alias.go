// Package alias maintains the bidirectional mapping between alternate
// target designations and their canonical names. The mapping is built
// once per assembly run and is immutable afterwards.
//
// The alias set is a functional relation: one alias resolves to exactly
// one canonical name. A violation is a data-quality error surfaced at
// construction time, never a silent pick.
package alias

import (
	"bytes"
	"strings"

	"github.com/exotools/exocat/pkg/names"
)

// Pair is one directed alias edge: Alias resolves to Canonical.
type Pair struct {
	Alias     string
	Canonical string
}

// Index is the immutable alias mapping plus its inverse view.
type Index struct {
	canonical  map[string]string
	aliasOrder []string
	canonOrder []string
}

// New builds an Index from alias pairs. With asHosts true, both sides
// of every pair are first truncated to the host star name, producing a
// host-level index distinct from the planet-level one. Self-aliases
// (after the optional truncation) are skipped: only true renamings are
// kept. An alias mapping to two distinct canonicals returns an
// AmbiguousAliasError.
func New(pairs []Pair, asHosts bool) (*Index, error) {
	ix := &Index{canonical: make(map[string]string)}
	seen := make(map[string]bool)

	for _, p := range pairs {
		a, c := p.Alias, p.Canonical
		if asHosts {
			a = names.Host(a)
			c = names.Host(c)
		}
		if a == c {
			continue
		}
		if prev, ok := ix.canonical[a]; ok {
			if prev != c {
				return nil, AmbiguousAliasError(a, prev, c)
			}
			continue
		}
		ix.canonical[a] = c
		ix.aliasOrder = append(ix.aliasOrder, a)
		if !seen[c] {
			seen[c] = true
			ix.canonOrder = append(ix.canonOrder, c)
		}
	}
	return ix, nil
}

// Resolve returns the canonical name for an alias.
func (ix *Index) Resolve(alias string) (string, bool) {
	canonical, ok := ix.canonical[alias]
	return canonical, ok
}

// Len returns the number of alias edges.
func (ix *Index) Len() int {
	return len(ix.aliasOrder)
}

// Pairs returns all alias edges in discovery order.
func (ix *Index) Pairs() []Pair {
	res := make([]Pair, len(ix.aliasOrder))
	for i, a := range ix.aliasOrder {
		res[i] = Pair{Alias: a, Canonical: ix.canonical[a]}
	}
	return res
}

// Canonicals returns the canonical names in discovery order.
func (ix *Index) Canonicals() []string {
	res := make([]string, len(ix.canonOrder))
	copy(res, ix.canonOrder)
	return res
}

// Invert groups aliases by canonical name, preserving discovery order
// within each group. The order matters: Select picks the first match
// within a prefix rank.
func (ix *Index) Invert() map[string][]string {
	res := make(map[string][]string)
	for _, a := range ix.aliasOrder {
		c := ix.canonical[a]
		res[c] = append(res[c], a)
	}
	return res
}

// Select scans preferred catalog prefixes in priority order and returns
// the first alias starting with the highest-ranked prefix; ties within
// one prefix break by discovery order. Returns def when nothing
// matches.
func Select(aliases []string, prefixes []string, def string) string {
	for _, prefix := range prefixes {
		for _, a := range aliases {
			if strings.HasPrefix(a, prefix) {
				return a
			}
		}
	}
	return def
}

// MarshalText emits the persisted alias table format, one canonical
// name per line with its comma-separated aliases. Parsing the output
// reproduces the same Index.
func (ix *Index) MarshalText() ([]byte, error) {
	inv := ix.Invert()
	var buf bytes.Buffer
	for _, c := range ix.canonOrder {
		buf.WriteString(c)
		buf.WriteByte(':')
		buf.WriteString(strings.Join(inv[c], ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalText rebuilds an Index from the text table format. Together
// with MarshalText it lets an Index survive the snapshot round trip
// without exposing its internals.
func (ix *Index) UnmarshalText(data []byte) error {
	pairs, err := ParseTable(string(data))
	if err != nil {
		return err
	}
	decoded, err := New(pairs, false)
	if err != nil {
		return err
	}
	*ix = *decoded
	return nil
}
