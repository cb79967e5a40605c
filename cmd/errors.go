/*
Copyright © 2025 The exocat authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/exotools/exocat/pkg/errcode"
)

func LookupNotFoundError(name string) error {
	msg := `Target <em>%s</em> is not in the catalog

<em>Possible causes:</em>
  - The designation is misspelled
  - The target entered the archives after the last assembly

<em>How to fix:</em>
  1. Try another designation of the same target
  2. Re-run <em>exocat assemble</em> with fresh inputs`
	vars := []any{name}
	return &gn.Error{
		Code: errcode.LookupNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("target not found: %s", name),
	}
}
