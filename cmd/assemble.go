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
	"github.com/exotools/exocat/internal/iosources"
	"github.com/exotools/exocat/pkg/config"
)

// getAssembleCmd returns the assemble command.
func getAssembleCmd() *cobra.Command {
	var (
		raPrecision  int
		decPrecision int
		jobs         int
	)

	assembleCmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble the catalog from configured sources",
		Long: `Assemble the unified target catalog.

This command:
  1. Reads sources.yaml to discover the input files
  2. Loads the confirmed/candidate archives, the observation log and
     the alias tables concurrently
  3. Merges duplicate archive rows per canonical planet name and
     derives missing orbital quantities
  4. Matches observed targets to catalog hosts by name and by
     truncated coordinates
  5. Writes the curated alias table and the catalog snapshot

Input files configured in: ~/.config/exocat/sources.yaml

Examples:
  exocat assemble
  exocat assemble --ra-precision 5 --dec-precision 4
  exocat assemble --jobs 2`,
		Aliases: []string{"build"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("ra-precision") {
				cfg.Update([]config.Option{
					config.OptClusterRAPrecision(raPrecision),
				})
			}
			if cmd.Flags().Changed("dec-precision") {
				cfg.Update([]config.Option{
					config.OptClusterDecPrecision(decPrecision),
				})
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
			}

			err := runAssemble()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	assembleCmd.Flags().IntVar(
		&raPrecision, "ra-precision", 0,
		"right-ascension characters compared for coordinate matching",
	)
	assembleCmd.Flags().IntVar(
		&decPrecision, "dec-precision", 0,
		"declination characters compared for coordinate matching",
	)
	assembleCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent input loaders",
	)

	return assembleCmd
}

func runAssemble() error {
	ctx := context.Background()
	a := ioassemble.New(cfg, iosources.New(cfg))
	_, err := a.Assemble(ctx)
	return err
}
