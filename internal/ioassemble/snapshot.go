package ioassemble

import (
	"os"

	"github.com/gnames/gnfmt"

	"github.com/exotools/exocat/pkg/catalog"
)

// writeSnapshot persists the assembled catalog as a JSON artifact.
// JSON keeps nil and zero apart for the record fields, where a zero
// value like [Fe/H]=0.0 is real data, not an absent one.
func writeSnapshot(path string, cat *catalog.AssembledCatalog) error {
	enc := gnfmt.GNjson{}
	data, err := enc.Encode(cat)
	if err != nil {
		return SnapshotEncodeError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return SnapshotWriteError(path, err)
	}
	return nil
}

// readSnapshot decodes a catalog snapshot written by writeSnapshot.
func readSnapshot(path string) (*catalog.AssembledCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, SnapshotNotFoundError(path)
		}
		return nil, SnapshotReadError(path, err)
	}
	enc := gnfmt.GNjson{}
	var cat catalog.AssembledCatalog
	if err = enc.Decode(data, &cat); err != nil {
		return nil, SnapshotDecodeError(path, err)
	}
	return &cat, nil
}
