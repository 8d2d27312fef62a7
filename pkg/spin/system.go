package spin

import (
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
)

// System is an ordered sequence of coupled sites plus an abundance
// weight. The site order defines the index space for transitions and
// must not change during pathway resolution.
type System struct {
	Sites []Site

	// Abundance of the system as a percentage, used by ensemble
	// averaging. Defaults to 100 when constructed via NewSystem.
	Abundance float64

	// Name is an optional user annotation.
	Name string
}

// NewSystem builds a system from the given sites with 100% abundance.
func NewSystem(sites ...Site) *System {
	return &System{Sites: sites, Abundance: 100}
}

// Multiplicities returns the 2I+1 value of every site in site order.
func (s *System) Multiplicities() []int {
	res := make([]int, len(s.Sites))
	for i, site := range s.Sites {
		res[i] = site.Isotope.SpinMultiplicity
	}
	return res
}

// SiteIndexes returns the indexes of all sites whose isotope matches
// the given symbol, in site order.
func (s *System) SiteIndexes(symbol string) []int {
	var res []int
	for i, site := range s.Sites {
		if site.Isotope.Symbol == symbol {
			res = append(res, i)
		}
	}
	return res
}

// IsotopeSymbols returns the distinct isotope symbols of the system in
// first-appearance order.
func (s *System) IsotopeSymbols() []string {
	var res []string
	seen := make(map[string]struct{})
	for _, site := range s.Sites {
		symbol := site.Isotope.Symbol
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		res = append(res, symbol)
	}
	return res
}

// StateCount returns the number of Zeeman product states of the
// system, the product of all site multiplicities. The transition
// universe is the square of this number.
func (s *System) StateCount() int {
	res := 1
	for _, site := range s.Sites {
		res *= site.Isotope.SpinMultiplicity
	}
	return res
}

// ShapeFingerprint returns a deterministic UUID derived from the
// sequence of site multiplicities. Systems with the same fingerprint
// share the same transition universe, which makes the fingerprint a
// safe memoization key.
func (s *System) ShapeFingerprint() string {
	parts := make([]string, len(s.Sites))
	for i, site := range s.Sites {
		parts[i] = fmt.Sprintf("%d", site.Isotope.SpinMultiplicity)
	}
	return gnuuid.New(strings.Join(parts, ",")).String()
}
