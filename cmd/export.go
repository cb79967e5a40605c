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
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/exotools/exocat/internal/ioassemble"
	"github.com/exotools/exocat/internal/ioexport"
	"github.com/exotools/exocat/internal/iosources"
	"github.com/exotools/exocat/pkg/config"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var batchSize int

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the assembled catalog to SQLite",
		Long: `Export the catalog snapshot into a single-file SQLite database.

The export contains three tables:
  - targets: one row per planet with all numeric fields and flags
  - aliases: alternative designations mapped to canonical names
  - observations: observation-log coordinates of JWST-observed hosts

Requires a snapshot written by 'exocat assemble'.

Examples:
  exocat export
  exocat export --batch-size 5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("batch-size") {
				cfg.Update([]config.Option{
					config.OptCatalogBatchSize(batchSize),
				})
			}

			err := runExport()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().IntVarP(
		&batchSize, "batch-size", "b", 0,
		"number of records per insert batch",
	)

	return exportCmd
}

func runExport() error {
	ctx := context.Background()
	a := ioassemble.New(cfg, iosources.New(cfg))
	cat, err := a.LoadSnapshot()
	if err != nil {
		return err
	}
	return ioexport.New(cfg).Export(ctx, cat)
}
