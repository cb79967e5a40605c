package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/exotools/exocat/pkg/errcode"
)

func ConfigLoadError(path string, err error) error {
	msg := `Cannot load configuration from <em>%s</em>

<em>How to fix:</em>
  1. Validate YAML syntax
  2. Remove the file to regenerate the default configuration`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load config: %w", fn, err),
	}
}
