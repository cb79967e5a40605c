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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/exotools/exocat/internal/ioassemble"
	"github.com/exotools/exocat/internal/iosources"
	"github.com/exotools/exocat/pkg/alias"
	"github.com/exotools/exocat/pkg/catalog"
	"github.com/exotools/exocat/pkg/names"
)

// getLookupCmd returns the lookup command.
func getLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up a target in the assembled catalog",
		Long: `Look up a planet by any of its designations.

The raw name is normalized and resolved through the alias index, so
archive spellings, observation-log spellings and candidate
designations all find the same record.

Requires a snapshot written by 'exocat assemble'.

Examples:
  exocat lookup 'WASP-69 b'
  exocat lookup 'GL 436 b'
  exocat lookup 'TOI-741.01'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLookup(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return lookupCmd
}

func runLookup(raw string) error {
	a := ioassemble.New(cfg, iosources.New(cfg))
	cat, err := a.LoadSnapshot()
	if err != nil {
		return err
	}

	name := names.Normalize(raw)
	rec, ok := cat.Planet(name)
	if !ok {
		return LookupNotFoundError(raw)
	}

	printRecord(os.Stdout, cat, rec, cfg.Catalog.PreferredPrefixes)
	return nil
}

func printRecord(
	w io.Writer,
	cat *catalog.AssembledCatalog,
	rec catalog.PlanetRecord,
	prefixes []string,
) {
	aliases := cat.PlanetAliases.Invert()[rec.Planet]

	fmt.Fprintf(w, "Planet:        %s\n", rec.Planet)
	fmt.Fprintf(w, "Preferred:     %s\n",
		alias.Select(aliases, prefixes, rec.Planet))
	fmt.Fprintf(w, "Host:          %s\n", rec.Host)
	fmt.Fprintf(w, "Confirmed:     %v\n", rec.IsConfirmed)
	fmt.Fprintf(w, "Transiting:    %v\n", rec.IsTransiting)
	fmt.Fprintf(w, "JWST observed: %v\n", rec.IsJWST)

	if c, ok := cat.ObsCoords[rec.Host]; ok {
		fmt.Fprintf(w, "Observed at:   %s %s\n", c.RA, c.Dec)
	}

	fmt.Fprintln(w)
	fields := []struct {
		label string
		val   *float64
	}{
		{"RA (deg)", rec.RA},
		{"Dec (deg)", rec.Dec},
		{"Ks mag", rec.KsMag},
		{"Teff (K)", rec.Teff},
		{"log g", rec.LogG},
		{"[Fe/H]", rec.Metal},
		{"Rstar (Rsun)", rec.Rstar},
		{"Mstar (Msun)", rec.Mstar},
		{"Transit dur (h)", rec.TransitDur},
		{"Rplanet (Rearth)", rec.Rplanet},
		{"Mplanet (Mearth)", rec.Mplanet},
		{"Period (d)", rec.Period},
		{"SMA (au)", rec.SMA},
		{"a/Rstar", rec.RatDor},
		{"Rp/Rstar", rec.RatRor},
		{"Teq (K)", rec.Teq},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-17s %s\n", f.label+":", formatField(f.val))
	}

	if len(aliases) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Also known as: %s\n", strings.Join(aliases, ", "))
	}
}

func formatField(v *float64) string {
	if v == nil {
		return "None"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
