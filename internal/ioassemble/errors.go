package ioassemble

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/exotools/exocat/pkg/errcode"
)

func AssembleError(err error) error {
	msg := `Cannot assemble the catalog

<em>How to fix:</em>
  1. Check the alias tables for conflicting entries
  2. Re-run with <em>--log-level debug</em> for details`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.AssembleError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: assembly failed: %w", fn, err),
	}
}

func SnapshotEncodeError(path string, err error) error {
	msg := "Cannot encode catalog snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot encode snapshot: %w", fn, err),
	}
}

func SnapshotWriteError(path string, err error) error {
	msg := "Cannot write catalog snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}

func SnapshotReadError(path string, err error) error {
	msg := "Cannot read catalog snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func SnapshotNotFoundError(path string) error {
	msg := `No catalog snapshot at <em>%s</em>

<em>How to fix:</em>
  Run <em>exocat assemble</em> first`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: snapshot not found: %s", fn, path),
	}
}

func SnapshotDecodeError(path string, err error) error {
	msg := `Cannot decode catalog snapshot <em>%s</em>

<em>How to fix:</em>
  Re-run <em>exocat assemble</em> to regenerate it`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode snapshot: %w", fn, err),
	}
}
