package query

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
)

func buildSystem(t *testing.T, symbols ...string) *spin.System {
	t.Helper()
	reg := spin.NewRegistry()
	sites := make([]spin.Site, len(symbols))
	for i, s := range symbols {
		site, err := spin.NewSite(reg, s)
		require.NoError(t, err)
		sites[i] = site
	}
	return spin.NewSystem(sites...)
}

func channelList(t *testing.T, symbols ...string) []spin.Isotope {
	t.Helper()
	reg := spin.NewRegistry()
	res := make([]spin.Isotope, len(symbols))
	for i, s := range symbols {
		iso, err := reg.Lookup(s)
		require.NoError(t, err)
		res[i] = iso
	}
	return res
}

// TestMatch_SingleQuantumCounts verifies matched transition counts
// for P=[-1] queries against worked examples.
func TestMatch_SingleQuantumCounts(t *testing.T) {
	tests := []struct {
		name     string
		system   []string
		expected int
	}{
		{"single 13C site", []string{"13C"}, 1},
		{"13C next to an unqueried 1H", []string{"13C", "1H"}, 2},
		{"two 13C sites", []string{"13C", "13C"}, 4},
		{"two 13C and one 14N", []string{"13C", "13C", "14N"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := buildSystem(t, tt.system...)
			channels := channelList(t, "13C")
			q := TransitionQuery{
				Channels: map[int]Symmetry{0: {P: []int{-1}}},
			}

			matched := Match(sys, channels,
				[]TransitionQuery{q}, transition.Universe(sys))
			assert.Len(t, matched, tt.expected)
		})
	}
}

// TestMatch_DoubleQuantumUnreachable verifies P=[-2] on a single
// spin-1/2 site matches nothing.
func TestMatch_DoubleQuantumUnreachable(t *testing.T) {
	sys := buildSystem(t, "13C")
	channels := channelList(t, "13C")
	q := TransitionQuery{Channels: map[int]Symmetry{0: {P: []int{-2}}}}

	matched := Match(sys, channels,
		[]TransitionQuery{q}, transition.Universe(sys))
	assert.Empty(t, matched)
}

// TestMatch_DConstraint verifies quadrupolar-order filtering on a
// spin-1 site.
func TestMatch_DConstraint(t *testing.T) {
	sys := buildSystem(t, "14N")
	channels := channelList(t, "14N")
	universe := transition.Universe(sys)

	// Central P=-1 transitions split by satellite order.
	q := TransitionQuery{
		Channels: map[int]Symmetry{0: {P: []int{-1}, D: []int{1}}},
	}
	matched := Match(sys, channels, []TransitionQuery{q}, universe)
	require.Len(t, matched, 1)
	assert.Equal(t, -1, matched[0].P([]int{0}))
	assert.Equal(t, 1, matched[0].D([]int{0}))

	q.Channels[0] = Symmetry{P: []int{-1}}
	matched = Match(sys, channels, []TransitionQuery{q}, universe)
	assert.Len(t, matched, 2)
}

// TestMatch_DisjunctiveQueries verifies multiple queries on one event
// combine with OR and preserve universe order.
func TestMatch_DisjunctiveQueries(t *testing.T) {
	sys := buildSystem(t, "13C")
	channels := channelList(t, "13C")
	universe := transition.Universe(sys)

	plus := TransitionQuery{Channels: map[int]Symmetry{0: {P: []int{1}}}}
	minus := TransitionQuery{Channels: map[int]Symmetry{0: {P: []int{-1}}}}

	matched := Match(sys, channels,
		[]TransitionQuery{plus, minus}, universe)
	require.Len(t, matched, 2)
	// Universe order: the +1 transition precedes the -1 one.
	assert.Equal(t, 1, matched[0].P([]int{0}))
	assert.Equal(t, -1, matched[1].P([]int{0}))
}

// TestMatch_NoQueriesMeansPopulation verifies the trivial query keeps
// only population terms.
func TestMatch_NoQueriesMeansPopulation(t *testing.T) {
	sys := buildSystem(t, "14N")
	channels := channelList(t, "14N")

	matched := Match(sys, channels, nil, transition.Universe(sys))
	require.Len(t, matched, 3)
	for _, tr := range matched {
		assert.Equal(t, 0, tr.P([]int{0}))
		assert.True(t, tr.Equal(transition.Transition{
			Initial: tr.Initial, Final: tr.Initial,
		}))
	}
}

// TestTransitionQuery_Validate verifies malformed queries are
// rejected with the right code.
func TestTransitionQuery_Validate(t *testing.T) {
	sys := buildSystem(t, "13C")
	channels := channelList(t, "13C", "1H")

	tests := []struct {
		name    string
		query   TransitionQuery
		wantErr bool
	}{
		{
			"valid channel",
			TransitionQuery{Channels: map[int]Symmetry{0: {P: []int{-1}}}},
			false,
		},
		{
			"channel index out of range",
			TransitionQuery{Channels: map[int]Symmetry{3: {P: []int{-1}}}},
			true,
		},
		{
			"negative channel index",
			TransitionQuery{Channels: map[int]Symmetry{-1: {}}},
			true,
		},
		{
			"channel isotope absent from system",
			TransitionQuery{Channels: map[int]Symmetry{1: {P: []int{-1}}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate(sys, channels)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "error should be of type *gn.Error")
			assert.Equal(t, errcode.MalformedQueryError, gnErr.Code)
		})
	}
}
