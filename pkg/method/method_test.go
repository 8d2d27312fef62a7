package method

import (
	"math"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/query"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

func isotope(t *testing.T, symbol string) spin.Isotope {
	t.Helper()
	iso, err := spin.NewRegistry().Lookup(symbol)
	require.NoError(t, err)
	return iso
}

func singleQuantumDim(p int) SpectralDimension {
	return SpectralDimension{
		Count:         512,
		SpectralWidth: 25000,
		Events: []Event{
			SpectralEvent{
				Fraction: 1,
				Queries: []query.TransitionQuery{
					{Channels: map[int]query.Symmetry{0: {P: []int{p}}}},
				},
			},
		},
	}
}

// TestMethod_Validate verifies structural constraints on channels and
// dimensions.
func TestMethod_Validate(t *testing.T) {
	carbon := isotope(t, "13C")

	tests := []struct {
		name    string
		method  Method
		wantErr bool
	}{
		{
			"valid single dimension",
			Method{
				Channels:           []spin.Isotope{carbon},
				SpectralDimensions: []SpectralDimension{singleQuantumDim(-1)},
			},
			false,
		},
		{
			"no channels",
			Method{
				SpectralDimensions: []SpectralDimension{singleQuantumDim(-1)},
			},
			true,
		},
		{
			"too many channels",
			Method{
				Channels: []spin.Isotope{carbon, carbon, carbon, carbon},
				SpectralDimensions: []SpectralDimension{
					singleQuantumDim(-1),
				},
			},
			true,
		},
		{
			"no dimensions",
			Method{Channels: []spin.Isotope{carbon}},
			true,
		},
		{
			"too many dimensions",
			Method{
				Channels: []spin.Isotope{carbon},
				SpectralDimensions: []SpectralDimension{
					singleQuantumDim(-1),
					singleQuantumDim(-1),
					singleQuantumDim(-1),
				},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.method.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "error should be of type *gn.Error")
			assert.Equal(t, errcode.MethodValidationError, gnErr.Code)
		})
	}
}

// TestMethod_ValidateRotorFrequencies verifies the single spinning
// speed rule: zero and infinite speeds are idealizations and do not
// count, one finite speed is fine, two distinct finite speeds are
// rejected.
func TestMethod_ValidateRotorFrequencies(t *testing.T) {
	carbon := isotope(t, "13C")
	freq := func(f float64) *float64 { return &f }

	base := func(events ...Event) Method {
		return Method{
			Channels: []spin.Isotope{carbon},
			SpectralDimensions: []SpectralDimension{
				{Count: 128, Events: events},
			},
		}
	}

	tests := []struct {
		name    string
		method  Method
		wantErr bool
	}{
		{
			"one finite speed inherited",
			func() Method {
				m := base(
					SpectralEvent{Fraction: 0.5},
					SpectralEvent{Fraction: 0.5},
				)
				m.RotorFrequency = 10000
				return m
			}(),
			false,
		},
		{
			"event overrides with the same speed",
			func() Method {
				m := base(
					SpectralEvent{Fraction: 0.5, RotorFrequency: freq(10000)},
					SpectralEvent{Fraction: 0.5},
				)
				m.RotorFrequency = 10000
				return m
			}(),
			false,
		},
		{
			"static and infinite-speed idealizations",
			base(
				SpectralEvent{Fraction: 0.5, RotorFrequency: freq(0)},
				SpectralEvent{
					Fraction:       0.5,
					RotorFrequency: freq(math.Inf(1)),
				},
			),
			false,
		},
		{
			"two distinct finite speeds",
			base(
				SpectralEvent{Fraction: 0.5, RotorFrequency: freq(10000)},
				SpectralEvent{Fraction: 0.5, RotorFrequency: freq(5000)},
			),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.method.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
