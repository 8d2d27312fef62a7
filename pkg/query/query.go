// Package query implements the declarative transition filters of a
// method: symmetry queries selecting transitions by coherence-order
// change, and mixing queries connecting transitions across events.
//
// Queries form a closed set of tagged variants evaluated by pure
// matcher functions; there is no dynamic schema introspection.
package query

import (
	"fmt"
	"slices"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
)

// Symmetry restricts the net symmetry-function changes a transition
// may induce on the sites of one channel. P lists the allowed
// coherence-order changes, D the allowed quadrupolar-order changes. A
// nil list leaves that function unconstrained.
type Symmetry struct {
	P []int
	D []int
}

// TransitionQuery filters transitions per channel. Channels maps a
// 0-based method channel index to its symmetry constraint. Constraints
// of different channels combine conjunctively. Isotopes of the system
// not covered by any entry are implicitly restricted to population
// terms (P = 0); all site-level assignments satisfying the constraints
// are enumerated, so one (P, D) summary may select several distinct
// transitions.
type TransitionQuery struct {
	Channels map[int]Symmetry
}

// Population returns the trivial query that passes only population
// terms: the implicit P=[0] constraint applies to every isotope.
func Population() TransitionQuery {
	return TransitionQuery{}
}

// Validate checks the query against a method's channel list and a
// spin system. It rejects channel indexes outside the channel list and
// channels whose isotope has no site in the system, before any
// matching work begins.
func (q TransitionQuery) Validate(
	sys *spin.System,
	channels []spin.Isotope,
) error {
	for ch := range q.Channels {
		if ch < 0 || ch >= len(channels) {
			return malformedQueryError(fmt.Errorf(
				"transition query references channel %d, method has %d channels",
				ch+1, len(channels),
			))
		}
		symbol := channels[ch].Symbol
		if len(sys.SiteIndexes(symbol)) == 0 {
			return malformedQueryError(fmt.Errorf(
				"transition query references channel %d (%s) absent from spin system",
				ch+1, symbol,
			))
		}
	}
	return nil
}

// constraint is a fully resolved per-isotope filter.
type constraint struct {
	sites []int
	p, d  []int
}

// constraints resolves the query into one filter per isotope group of
// the system, filling the implicit P=[0] population filter for every
// isotope not named by a channel entry.
func (q TransitionQuery) constraints(
	sys *spin.System,
	channels []spin.Isotope,
) []constraint {
	explicit := make(map[string]Symmetry)
	for ch, sym := range q.Channels {
		explicit[channels[ch].Symbol] = sym
	}

	var res []constraint
	for _, symbol := range sys.IsotopeSymbols() {
		c := constraint{sites: sys.SiteIndexes(symbol)}
		if sym, ok := explicit[symbol]; ok {
			c.p, c.d = sym.P, sym.D
		} else {
			c.p = []int{0}
		}
		res = append(res, c)
	}
	return res
}

// Matches reports whether the transition satisfies the query for the
// given system and channel list.
func (q TransitionQuery) Matches(
	sys *spin.System,
	channels []spin.Isotope,
	t transition.Transition,
) bool {
	for _, c := range q.constraints(sys, channels) {
		if c.p != nil && !slices.Contains(c.p, t.P(c.sites)) {
			return false
		}
		if c.d != nil && !slices.Contains(c.d, t.D(c.sites)) {
			return false
		}
	}
	return true
}

// Match returns the subset of the universe satisfying any of the
// queries (disjunctive combination), preserving universe order. An
// empty query list means the trivial population query.
func Match(
	sys *spin.System,
	channels []spin.Isotope,
	queries []TransitionQuery,
	universe []transition.Transition,
) []transition.Transition {
	if len(queries) == 0 {
		queries = []TransitionQuery{Population()}
	}

	// Resolve constraints once per query instead of per transition.
	resolved := make([][]constraint, len(queries))
	for i, q := range queries {
		resolved[i] = q.constraints(sys, channels)
	}

	var res []transition.Transition
	for _, t := range universe {
		for _, cs := range resolved {
			if matchesConstraints(cs, t) {
				res = append(res, t)
				break
			}
		}
	}
	return res
}

func matchesConstraints(cs []constraint, t transition.Transition) bool {
	for _, c := range cs {
		if c.p != nil && !slices.Contains(c.p, t.P(c.sites)) {
			return false
		}
		if c.d != nil && !slices.Contains(c.d, t.D(c.sites)) {
			return false
		}
	}
	return true
}

func malformedQueryError(err error) error {
	return &gn.Error{
		Code: errcode.MalformedQueryError,
		Msg:  "Malformed transition query: %v",
		Vars: []any{err},
		Err:  fmt.Errorf("malformed transition query: %w", err),
	}
}
