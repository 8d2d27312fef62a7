// Package wigner computes reduced Wigner rotation matrix elements
// d^j_{m1,m2}(β) for arbitrary integer and half-integer angular
// momentum j. These are the single-spin rotation amplitudes that
// parameterize pulse mixing weights.
package wigner

import (
	"math"
)

// maxFact bounds the factorial table. Arguments never exceed 2j, and
// spin multiplicities beyond 2j = 60 are far outside physical isotope
// tables.
const maxFact = 61

var factTable = buildFactTable()

func buildFactTable() [maxFact]float64 {
	var t [maxFact]float64
	t[0] = 1
	for i := 1; i < maxFact; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}

func fact(x float64) float64 {
	n := int(math.Round(x))
	if n < 0 || n >= maxFact {
		return math.NaN()
	}
	return factTable[n]
}

// Element returns the reduced rotation matrix element
// d^j_{m1,m2}(beta) = ⟨j m1| exp(-i·beta·Jy) |j m2⟩ using the standard
// closed-form sum over Wigner's formula. It returns 0 when either
// projection is not a valid quantum number for j (|m| > j, or m not on
// the half-integer lattice of j).
func Element(j, m1, m2, beta float64) float64 {
	if !validProjection(j, m1) || !validProjection(j, m2) {
		return 0
	}

	pref := math.Sqrt(
		fact(j+m1) * fact(j-m1) * fact(j+m2) * fact(j-m2),
	)

	cosb := math.Cos(beta / 2)
	sinb := math.Sin(beta / 2)

	sMin := max(0, int(math.Round(m2-m1)))
	sMax := min(int(math.Round(j+m2)), int(math.Round(j-m1)))

	var sum float64
	for s := sMin; s <= sMax; s++ {
		fs := float64(s)
		denom := fact(j+m2-fs) * fact(fs) * fact(m1-m2+fs) * fact(j-m1-fs)
		sign := 1.0
		if (int(math.Round(m1-m2))+s)%2 != 0 {
			sign = -1
		}
		sum += sign *
			math.Pow(cosb, 2*j+m2-m1-2*fs) *
			math.Pow(sinb, m1-m2+2*fs) / denom
	}
	return pref * sum
}

// validProjection reports whether m is a projection quantum number of
// j: |m| ≤ j and j-m integral.
func validProjection(j, m float64) bool {
	if math.Abs(m) > j+1e-9 {
		return false
	}
	diff := j - m
	return math.Abs(diff-math.Round(diff)) < 1e-9
}
