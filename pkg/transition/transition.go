// Package transition represents quantum transitions of a spin system
// and weighted, ordered sequences of them (pathways).
package transition

import (
	"fmt"
	"math"
	"strings"
)

// mTolerance bounds the floating-point noise accepted when comparing
// magnetic quantum numbers, which are exact multiples of 1/2.
const mTolerance = 1e-9

// Transition is a simultaneous change of spin states across all sites
// of a system. Initial and Final hold one magnetic quantum number per
// site, in site order; both have length equal to the system's site
// count.
type Transition struct {
	Initial []float64 `json:"initial"`
	Final   []float64 `json:"final"`
}

// P returns the net coherence-order change of the transition over the
// given site subset: sum of (final - initial). The result is always an
// integer because magnetic quantum numbers of one site differ by whole
// steps.
func (t Transition) P(sites []int) int {
	var sum float64
	for _, i := range sites {
		sum += t.Final[i] - t.Initial[i]
	}
	return int(math.Round(sum))
}

// D returns the quadrupolar-order change over the given site subset:
// sum of (final² - initial²). Spin-1/2 sites contribute zero since
// both squares are 1/4.
func (t Transition) D(sites []int) int {
	var sum float64
	for _, i := range sites {
		sum += t.Final[i]*t.Final[i] - t.Initial[i]*t.Initial[i]
	}
	return int(math.Round(sum))
}

// Equal reports whether both transitions connect the same pair of
// Zeeman states.
func (t Transition) Equal(o Transition) bool {
	if len(t.Initial) != len(o.Initial) || len(t.Final) != len(o.Final) {
		return false
	}
	for i := range t.Initial {
		if math.Abs(t.Initial[i]-o.Initial[i]) > mTolerance {
			return false
		}
	}
	for i := range t.Final {
		if math.Abs(t.Final[i]-o.Final[i]) > mTolerance {
			return false
		}
	}
	return true
}

// String renders the transition as |initial⟩ → |final⟩ with one m
// value per site.
func (t Transition) String() string {
	return fmt.Sprintf("|%s⟩ → |%s⟩", mList(t.Initial), mList(t.Final))
}

func mList(ms []float64) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = fmt.Sprintf("%g", m)
	}
	return strings.Join(parts, ", ")
}
