package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/spinsolve/nmrpath/internal/ioisotopes"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// getIsotopesCmd returns the isotopes command.
func getIsotopesCmd() *cobra.Command {
	var importFile string

	isotopesCmd := &cobra.Command{
		Use:   "isotopes",
		Short: "List known isotopes",
		Long: `List the isotopes known to nmrpath with their spin, gyromagnetic
ratio, and natural abundance.

Custom isotopes can be merged into the table from a JSON file with
the same shape as the built-in table, or from an SQLite database with
an isotopes table. Custom symbols must not collide with built-in
ones.

Examples:
  nmrpath isotopes
  nmrpath isotopes --import custom.json
  nmrpath isotopes --import custom.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIsotopes(importFile)
		},
	}

	isotopesCmd.Flags().StringVar(&importFile, "import", "",
		"custom isotope file (.json or .sqlite) merged before listing")

	return isotopesCmd
}

func runIsotopes(importFile string) error {
	reg := spin.NewRegistry()

	if importFile != "" {
		count, err := importIsotopes(reg, importFile)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Imported <em>%s</em> custom isotopes from %s",
			humanize.Comma(int64(count)), importFile)
	}

	fmt.Printf("%-8s %6s %12s %12s\n",
		"Symbol", "Spin", "γ (MHz/T)", "Abundance")
	for _, symbol := range reg.Symbols() {
		iso, err := reg.Lookup(symbol)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %6s %12.4f %11.2f%%\n",
			iso.Symbol, spinString(iso), iso.GyromagneticRatio,
			iso.NaturalAbundance)
	}
	return nil
}

// spinString formats the spin quantum number as a fraction for odd
// multiplicities of two, the usual notation in NMR tables.
func spinString(iso spin.Isotope) string {
	if iso.SpinMultiplicity%2 == 0 {
		return fmt.Sprintf("%d/2", iso.SpinMultiplicity-1)
	}
	return fmt.Sprintf("%d", (iso.SpinMultiplicity-1)/2)
}

// importIsotopes dispatches on the file extension: .json files load
// through the JSON importer, anything else goes to SQLite.
func importIsotopes(reg *spin.Registry, path string) (int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return ioisotopes.ImportJSON(reg, path)
	}
	return ioisotopes.ImportSQLite(reg, path)
}
