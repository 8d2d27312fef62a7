// Package spin provides the building blocks of a nuclear spin system:
// isotopes with their intrinsic properties, sites with interaction
// tensors, and ordered collections of sites (systems).
//
// This is a pure package - the only shared state is the isotope
// registry, which is read-many/write-serialized (see Registry).
package spin

import (
	"fmt"
)

// Isotope describes the intrinsic properties of a nuclear isotope.
// The zero value is not usable; obtain isotopes from a Registry.
// Isotope values are immutable once constructed.
type Isotope struct {
	// Symbol is the isotope symbol, mass number followed by the
	// element symbol, for example "13C" or "27Al". Custom isotopes
	// may use free-form symbols.
	Symbol string `json:"symbol"`

	// SpinMultiplicity is 2I+1 where I is the spin quantum number.
	SpinMultiplicity int `json:"spin_multiplicity"`

	// GyromagneticRatio is the reduced gyromagnetic ratio in MHz/T.
	GyromagneticRatio float64 `json:"gyromagnetic_ratio"`

	// QuadrupoleMoment is the electric quadrupole moment in eB
	// (electron-barn). Zero for spin-1/2 nuclei.
	QuadrupoleMoment float64 `json:"quadrupole_moment"`

	// NaturalAbundance is given as a percentage in [0, 100].
	NaturalAbundance float64 `json:"natural_abundance"`

	// AtomicNumber of the element.
	AtomicNumber int `json:"atomic_number"`
}

// Spin returns the spin quantum number I of the isotope,
// (spin_multiplicity - 1) / 2.
func (iso Isotope) Spin() float64 {
	return float64(iso.SpinMultiplicity-1) / 2
}

// IsQuadrupolar reports whether the isotope has spin > 1/2 and can
// therefore carry a quadrupolar coupling.
func (iso Isotope) IsQuadrupolar() bool {
	return iso.SpinMultiplicity > 2
}

// LarmorFrequency returns the Larmor frequency in MHz of the isotope
// at the magnetic field strength b0 given in T.
func (iso Isotope) LarmorFrequency(b0 float64) float64 {
	return -iso.GyromagneticRatio * b0
}

// validate checks the isotope data ranges shared by built-in and
// custom isotopes.
func (iso Isotope) validate() error {
	if iso.Symbol == "" {
		return fmt.Errorf("isotope symbol cannot be empty")
	}
	if iso.SpinMultiplicity <= 1 {
		return fmt.Errorf(
			"spin_multiplicity must be an integer greater than one, got %d",
			iso.SpinMultiplicity,
		)
	}
	if iso.NaturalAbundance < 0 || iso.NaturalAbundance > 100 {
		return fmt.Errorf(
			"natural_abundance must be between 0 and 100, got %g",
			iso.NaturalAbundance,
		)
	}
	return nil
}
