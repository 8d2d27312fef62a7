// Package ioisotopes imports custom isotope definitions into a spin
// registry from JSON files and SQLite databases.
package ioisotopes

import (
	"database/sql"
	"os"
	"slices"

	"github.com/gnames/gnfmt"
	_ "modernc.org/sqlite"

	"github.com/spinsolve/nmrpath/internal/iofs"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// ImportJSON reads a JSON file with a symbol-keyed isotope table, the
// same shape as the built-in one, and registers every entry. Returns
// the number of registered isotopes. Registration stops at the first
// collision or invalid entry, leaving earlier registrations in place.
func ImportJSON(reg *spin.Registry, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, iofs.ReadFileError(path, err)
	}

	enc := gnfmt.GNjson{}
	var raw map[string]spin.Isotope
	if err := enc.Decode(data, &raw); err != nil {
		return 0, ImportError(path, err)
	}

	// Deterministic registration order keeps collision errors stable.
	symbols := make([]string, 0, len(raw))
	for symbol := range raw {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	var count int
	for _, symbol := range symbols {
		iso := raw[symbol]
		iso.Symbol = symbol
		if err := reg.Register(iso); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ImportSQLite reads custom isotopes from the isotopes table of an
// SQLite database and registers every row. Returns the number of
// registered isotopes.
//
// Expected schema:
//
//	CREATE TABLE isotopes (
//	  symbol TEXT PRIMARY KEY,
//	  spin_multiplicity INTEGER NOT NULL,
//	  gyromagnetic_ratio REAL NOT NULL,
//	  quadrupole_moment REAL DEFAULT 0,
//	  natural_abundance REAL DEFAULT 0,
//	  atomic_number INTEGER DEFAULT 0
//	);
func ImportSQLite(reg *spin.Registry, path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, iofs.ReadFileError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, ImportError(path, err)
	}
	defer db.Close()

	q := `
SELECT symbol, spin_multiplicity, gyromagnetic_ratio,
       quadrupole_moment, natural_abundance, atomic_number
  FROM isotopes
 ORDER BY symbol`
	rows, err := db.Query(q)
	if err != nil {
		return 0, ImportError(path, err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var iso spin.Isotope
		err = rows.Scan(
			&iso.Symbol, &iso.SpinMultiplicity, &iso.GyromagneticRatio,
			&iso.QuadrupoleMoment, &iso.NaturalAbundance,
			&iso.AtomicNumber,
		)
		if err != nil {
			return count, ImportError(path, err)
		}
		if err = reg.Register(iso); err != nil {
			return count, err
		}
		count++
	}
	if err = rows.Err(); err != nil {
		return count, ImportError(path, err)
	}
	return count, nil
}
