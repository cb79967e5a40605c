package ioassemble

import (
	"strings"

	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/names"
)

// curateAliases thins the planet alias index down to the shippable
// essentials. Once a planet is confirmed with a letter designation its
// candidate dot-suffix aliases are stale and get dropped; likewise a
// confirmed TOI planet drops its non-letter TOI aliases. Canonical
// names left with no aliases leave the table entirely.
func curateAliases(ix *alias.Index) (*alias.Index, error) {
	aka := ix.Invert()
	var pairs []alias.Pair

	for _, name := range ix.Canonicals() {
		aliases := aka[name]

		anyLetter := false
		for _, a := range aliases {
			if names.IsLetter(a) {
				anyLetter = true
				break
			}
		}
		if anyLetter {
			kept := aliases[:0:0]
			for _, a := range aliases {
				if names.IsLetter(a) {
					kept = append(kept, a)
				}
			}
			aliases = kept
		}

		if strings.HasPrefix(name, "TOI") && names.IsLetter(name) {
			kept := aliases[:0:0]
			for _, a := range aliases {
				if strings.HasPrefix(a, "TOI") && !names.IsLetter(a) {
					continue
				}
				kept = append(kept, a)
			}
			aliases = kept
		}

		for _, a := range aliases {
			pairs = append(pairs, alias.Pair{Alias: a, Canonical: name})
		}
	}

	// Curation only drops pairs, so rebuilding cannot introduce a new
	// ambiguity.
	return alias.New(pairs, false)
}
