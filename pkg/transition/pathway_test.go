package transition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPathway_Equal verifies structural equality with weight
// tolerance.
func TestPathway_Equal(t *testing.T) {
	tr := Transition{Initial: []float64{0.5}, Final: []float64{-0.5}}
	p := Pathway{Transitions: []Transition{tr}, Weight: complex(0.25, 0)}

	assert.True(t, p.Equal(Pathway{
		Transitions: []Transition{tr},
		Weight:      complex(0.25, 1e-12),
	}))
	assert.False(t, p.Equal(Pathway{
		Transitions: []Transition{tr},
		Weight:      complex(-0.25, 0),
	}))
	assert.False(t, p.Equal(Pathway{Weight: complex(0.25, 0)}))
}

// TestPathway_JSONRoundTrip verifies the complex weight survives
// serialization as a [real, imaginary] pair.
func TestPathway_JSONRoundTrip(t *testing.T) {
	p := Pathway{
		Transitions: []Transition{
			{Initial: []float64{0.5, -0.5}, Final: []float64{-0.5, -0.5}},
			{Initial: []float64{-0.5, -0.5}, Final: []float64{0.5, -0.5}},
		},
		Weight: complex(-0.25, 0.5),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"weight":[-0.25,0.5]`)

	var got Pathway
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, p.Equal(got))
}
