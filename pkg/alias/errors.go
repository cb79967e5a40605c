package alias

import (
	"fmt"

	"github.com/exotools/exocat/pkg/errcode"
	"github.com/gnames/gn"
)

// AmbiguousAliasError creates an error for an alias that maps to two
// distinct canonical names in the persisted table. Downstream
// correctness depends on a functional alias mapping, so this is a hard
// data-integrity error at load time.
func AmbiguousAliasError(alias, first, second string) error {
	msg := `Alias maps to two different canonical names

<em>Alias:</em> %s
<em>Canonical names:</em> %s, %s

<em>How to fix:</em>
  1. Inspect the alias table for the conflicting lines
  2. Keep the edge for one canonical name, remove the other`

	vars := []any{alias, first, second}

	return &gn.Error{
		Code: errcode.AliasAmbiguousError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"ambiguous alias %q: %q vs %q",
			alias, first, second),
	}
}
