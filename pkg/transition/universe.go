package transition

import (
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// States enumerates every Zeeman product state of the system. Each
// state holds one magnetic quantum number per site, ranging over the
// site's 2I+1 values from -I to +I. Enumeration order is
// deterministic: site 0 is the most significant digit and quantum
// numbers increase within a site.
func States(sys *spin.System) [][]float64 {
	mults := sys.Multiplicities()
	total := sys.StateCount()

	res := make([][]float64, total)
	idx := make([]int, len(mults))
	for n := range total {
		state := make([]float64, len(mults))
		for i, mult := range mults {
			spinI := float64(mult-1) / 2
			state[i] = -spinI + float64(idx[i])
		}
		res[n] = state

		// Increment the mixed-radix counter, last site fastest.
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < mults[i] {
				break
			}
			idx[i] = 0
		}
	}
	return res
}

// Universe returns every physically valid transition of the system:
// the full Cartesian product of Zeeman states with themselves,
// initial-state major, final-state minor. Its size is the square of
// the system's state count; callers enforce size limits before
// invoking it.
func Universe(sys *spin.System) []Transition {
	states := States(sys)
	res := make([]Transition, 0, len(states)*len(states))
	for _, initial := range states {
		for _, final := range states {
			res = append(res, Transition{Initial: initial, Final: final})
		}
	}
	return res
}
