package iomethod

import (
	"math"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsolve/nmrpath/pkg/errcode"
)

// TestParseQuantity verifies splitting of "value unit" scalars.
func TestParseQuantity(t *testing.T) {
	tests := []struct {
		scalar  string
		value   float64
		unit    string
		wantErr bool
	}{
		{"9.4 T", 9.4, "T", false},
		{"54.7356 deg", 54.7356, "deg", false},
		{"10 kHz", 10, "kHz", false},
		{"-4 ppm", -4, "ppm", false},
		{"1e6 Hz", 1e6, "Hz", false},
		{".5 rad", 0.5, "rad", false},
		{"100", 100, "", false},
		{"  3.2 MHz  ", 3.2, "MHz", false},
		{"inf", math.Inf(1), "", false},
		{"inf Hz", math.Inf(1), "Hz", false},
		{"-inf", math.Inf(-1), "", false},
		{"", 0, "", true},
		{"fast", 0, "", true},
		{"T 9.4", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.scalar, func(t *testing.T) {
			val, unit, err := parseQuantity(tt.scalar)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, val)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

// TestParseFrequency verifies conversion to Hz.
func TestParseFrequency(t *testing.T) {
	tests := []struct {
		scalar string
		hz     float64
	}{
		{"25000", 25000},
		{"25000 Hz", 25000},
		{"25 kHz", 25000},
		{"0.5 MHz", 500000},
		{"1 GHz", 1e9},
		{"inf Hz", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.scalar, func(t *testing.T) {
			hz, err := parseFrequency(tt.scalar)
			require.NoError(t, err)
			assert.Equal(t, tt.hz, hz)
		})
	}
}

// TestParseAngle verifies conversion to radians.
func TestParseAngle(t *testing.T) {
	tests := []struct {
		scalar string
		rad    float64
	}{
		{"1.5707963", 1.5707963},
		{"1.5707963 rad", 1.5707963},
		{"90 deg", math.Pi / 2},
		{"180 °", math.Pi},
		{"54.7356 deg", 54.7356 * math.Pi / 180},
	}

	for _, tt := range tests {
		t.Run(tt.scalar, func(t *testing.T) {
			rad, err := parseAngle(tt.scalar)
			require.NoError(t, err)
			assert.InDelta(t, tt.rad, rad, 1e-12)
		})
	}
}

// TestParseFluxDensity verifies conversion to T.
func TestParseFluxDensity(t *testing.T) {
	b0, err := parseFluxDensity("9.4 T")
	require.NoError(t, err)
	assert.Equal(t, 9.4, b0)

	b0, err = parseFluxDensity("400 mT")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, b0, 1e-12)
}

// TestParseUnits_Unsupported verifies bad units yield UnitError for
// every quantity kind.
func TestParseUnits_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (float64, error)
		input string
	}{
		{"frequency", parseFrequency, "10 THz"},
		{"angle", parseAngle, "90 grad"},
		{"flux density", parseFluxDensity, "9.4 G"},
		{"shift", parseShift, "5 Hz"},
		{"percent", parsePercent, "5 ppm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.input)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "error should be of type *gn.Error")
			assert.Equal(t, errcode.UnitError, gnErr.Code)
		})
	}
}
