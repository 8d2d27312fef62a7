package method

import (
	"fmt"
	"math/cmplx"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/query"
	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
)

// DefaultMaxStates is the default cap on the number of Zeeman product
// states of a system accepted for resolution. The transition universe
// is the square of the state count, so 2048 states already mean four
// million transitions.
const DefaultMaxStates = 2048

// weightEps prunes pathways whose accumulated weight is zero up to
// floating-point noise; π-pulse forbidden connections land around
// 1e-17, well below it.
const weightEps = 1e-12

// Resolver computes transition pathways for (system, method) pairs. A
// resolver is stateless apart from its optional universe cache and is
// safe for concurrent use.
type Resolver struct {
	maxStates int
	cache     *universeCache
}

// Option configures a Resolver.
type Option func(*Resolver)

// OptMaxStates overrides the default size guard on the number of
// Zeeman states per system.
func OptMaxStates(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxStates = n
		}
	}
}

// OptUniverseCache enables memoization of transition universes across
// Resolve calls, keyed by system shape. Useful for ensembles of
// same-shaped systems (powder-averaging callers).
func OptUniverseCache() Option {
	return func(r *Resolver) {
		r.cache = newUniverseCache()
	}
}

// NewResolver returns a resolver with the given options applied.
func NewResolver(opts ...Option) *Resolver {
	res := &Resolver{maxStates: DefaultMaxStates}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Resolve computes every transition pathway of the method on the
// system, with its complex amplitude weight. The result is ordered
// deterministically: repeated calls on equal inputs return identical
// pathway lists. Empty results are a normal outcome, not an error.
func (r *Resolver) Resolve(
	sys *spin.System,
	m *Method,
) ([]transition.Pathway, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := r.validateQueries(sys, m); err != nil {
		return nil, err
	}
	if err := r.checkSize(sys); err != nil {
		return nil, err
	}

	var universe []transition.Transition
	if r.cache != nil {
		universe = r.cache.get(sys)
	} else {
		universe = transition.Universe(sys)
	}

	return assemble(sys, m, universe), nil
}

// validateQueries surfaces malformed transition and mixing queries at
// resolution start, before any combinatorial work.
func (r *Resolver) validateQueries(sys *spin.System, m *Method) error {
	for _, dim := range m.SpectralDimensions {
		for _, ev := range dim.Events {
			switch e := ev.(type) {
			case SpectralEvent:
				for _, q := range e.Queries {
					if err := q.Validate(sys, m.Channels); err != nil {
						return err
					}
				}
			case MixingEvent:
				if err := e.Query.Validate(sys, m.Channels); err != nil {
					return err
				}
			default:
				return methodError(fmt.Errorf(
					"unrecognized event type %T", ev,
				))
			}
		}
	}
	return nil
}

func (r *Resolver) checkSize(sys *spin.System) error {
	states := sys.StateCount()
	if states <= r.maxStates {
		return nil
	}
	return &gn.Error{
		Code: errcode.SizeLimitError,
		Msg: "Spin system with %d Zeeman states exceeds the limit of " +
			"%d, its transition universe would not fit in memory",
		Vars: []any{states, r.maxStates},
		Err: fmt.Errorf(
			"size limit exceeded: %d states > %d", states, r.maxStates,
		),
	}
}

// TransitionPathways resolves the method on the system using a
// resolver with default settings.
func (m *Method) TransitionPathways(
	sys *spin.System,
) ([]transition.Pathway, error) {
	return NewResolver().Resolve(sys, m)
}

// partial is a pathway under construction.
type partial struct {
	transitions []transition.Transition
	weight      complex128
}

// assemble walks the method's events in declaration order across all
// dimensions, maintaining a frontier of partial pathways. Spectral
// events extend every partial with every admissible transition; the
// mixing queries collected since the previous spectral event gate and
// reweight each extension. Zero-weight partials are dropped;
// duplicates arising from distinct query branches are retained.
func assemble(
	sys *spin.System,
	m *Method,
	universe []transition.Transition,
) []transition.Pathway {
	frontier := []partial{{weight: 1}}
	var pending []query.MixingQuery

	for _, dim := range m.SpectralDimensions {
		for _, ev := range dim.Events {
			switch e := ev.(type) {
			case SpectralEvent:
				admissible := query.Match(
					sys, m.Channels, e.Queries, universe,
				)
				frontier = extend(frontier, admissible, pending, sys, m)
				pending = nil
			case MixingEvent:
				pending = append(pending, e.Query)
			}
			if len(frontier) == 0 {
				// Every pathway through this event is absent; the
				// empty result propagates.
				return nil
			}
		}
	}

	res := make([]transition.Pathway, 0, len(frontier))
	for _, p := range frontier {
		res = append(res, transition.Pathway{
			Transitions: p.transitions,
			Weight:      p.weight,
		})
	}
	return res
}

func extend(
	frontier []partial,
	admissible []transition.Transition,
	pending []query.MixingQuery,
	sys *spin.System,
	m *Method,
) []partial {
	var next []partial
	for _, p := range frontier {
		for _, t := range admissible {
			w := p.weight
			if len(p.transitions) > 0 {
				from := p.transitions[len(p.transitions)-1]
				for _, mq := range pending {
					w *= ConnectionWeight(from, t, sys, m.Channels, mq)
				}
				if cmplx.Abs(w) < weightEps {
					continue
				}
			}

			transitions := make(
				[]transition.Transition, len(p.transitions)+1,
			)
			copy(transitions, p.transitions)
			transitions[len(p.transitions)] = t
			next = append(next, partial{transitions: transitions, weight: w})
		}
	}
	return next
}
