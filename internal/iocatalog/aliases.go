package iocatalog

import (
	"os"

	"github.com/exotools/exocat/pkg/alias"
)

// ReadAliasPairs loads an alias table file, one 'canonical:a1,a2' line
// per canonical name. Blank lines and '#' comments are skipped.
func ReadAliasPairs(path string) ([]alias.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, AliasReadError(path, err)
	}
	pairs, err := alias.ParseTable(string(data))
	if err != nil {
		return nil, AliasDecodeError(path, err)
	}
	return pairs, nil
}

// WriteAliasTable persists an alias index as a table file readable by
// ReadAliasPairs.
func WriteAliasTable(path string, ix *alias.Index) error {
	data, err := ix.MarshalText()
	if err != nil {
		return AliasWriteError(path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return AliasWriteError(path, err)
	}
	return nil
}
