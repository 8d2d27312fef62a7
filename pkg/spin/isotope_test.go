package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsotope_Spin verifies the spin quantum number derivation.
func TestIsotope_Spin(t *testing.T) {
	tests := []struct {
		name     string
		mult     int
		expected float64
	}{
		{"spin-1/2", 2, 0.5},
		{"spin-1", 3, 1},
		{"spin-3/2", 4, 1.5},
		{"spin-5/2", 6, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso := Isotope{SpinMultiplicity: tt.mult}
			assert.InDelta(t, tt.expected, iso.Spin(), 1e-12)
		})
	}
}

// TestIsotope_IsQuadrupolar verifies only spin > 1/2 nuclei are
// quadrupolar.
func TestIsotope_IsQuadrupolar(t *testing.T) {
	assert.False(t, Isotope{SpinMultiplicity: 2}.IsQuadrupolar())
	assert.True(t, Isotope{SpinMultiplicity: 3}.IsQuadrupolar())
	assert.True(t, Isotope{SpinMultiplicity: 6}.IsQuadrupolar())
}

// TestIsotope_LarmorFrequency verifies the sign convention and field
// scaling.
func TestIsotope_LarmorFrequency(t *testing.T) {
	proton := Isotope{GyromagneticRatio: 42.57747892}
	assert.InDelta(t, -400.228301848, proton.LarmorFrequency(9.4), 1e-6)

	// Negative gyromagnetic ratio flips the sign.
	oxygen := Isotope{GyromagneticRatio: -5.7742}
	assert.InDelta(t, 54.27748, oxygen.LarmorFrequency(9.4), 1e-6)

	assert.Zero(t, proton.LarmorFrequency(0))
}
