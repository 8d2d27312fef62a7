package transition

import (
	"encoding/json"
	"fmt"
	"math/cmplx"
	"strings"
)

// WeightTolerance is the floating-point tolerance used when comparing
// pathway weights. Weights are products of rotation matrix elements
// and unit phases, so the accumulated error stays far below it.
const WeightTolerance = 1e-9

// Pathway is one complete ordered sequence of transitions traversing
// every spectral event of a method, together with its accumulated
// complex amplitude weight. Pathways are immutable once returned by
// the resolver and owned by the caller.
type Pathway struct {
	Transitions []Transition
	Weight      complex128
}

// Equal reports structural equality: same ordered transitions and the
// same weight within WeightTolerance.
func (p Pathway) Equal(o Pathway) bool {
	if len(p.Transitions) != len(o.Transitions) {
		return false
	}
	for i := range p.Transitions {
		if !p.Transitions[i].Equal(o.Transitions[i]) {
			return false
		}
	}
	return cmplx.Abs(p.Weight-o.Weight) <= WeightTolerance
}

// MarshalJSON serializes the weight as a [real, imaginary] pair since
// JSON has no complex number type.
func (p Pathway) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Transitions []Transition `json:"pathway"`
		Weight      [2]float64   `json:"weight"`
	}{
		Transitions: p.Transitions,
		Weight:      [2]float64{real(p.Weight), imag(p.Weight)},
	})
}

// UnmarshalJSON restores a pathway serialized by MarshalJSON.
func (p *Pathway) UnmarshalJSON(data []byte) error {
	var raw struct {
		Transitions []Transition `json:"pathway"`
		Weight      [2]float64   `json:"weight"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Transitions = raw.Transitions
	p.Weight = complex(raw.Weight[0], raw.Weight[1])
	return nil
}

// String renders the pathway as its transitions joined with weight.
func (p Pathway) String() string {
	parts := make([]string, len(p.Transitions))
	for i, t := range p.Transitions {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s, weight=%v", strings.Join(parts, " ⇝ "), p.Weight)
}
