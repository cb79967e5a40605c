package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Sources errors
	SourcesConfigError
	SourcesValidationError

	// Alias errors
	AliasParseError
	AliasAmbiguousError

	// Catalog input errors
	TargetsParseError
	RawDumpParseError
	ObservationsParseError

	// Assembly errors
	AssembleError
	SnapshotEncodeError
	SnapshotDecodeError
	SnapshotNotFoundError

	// Export errors
	ExportConnectionError
	ExportSchemaError
	ExportInsertError

	// Lookup errors
	LookupNotFoundError
)
