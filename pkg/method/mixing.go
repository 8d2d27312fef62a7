package method

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/spinsolve/nmrpath/pkg/query"
	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
	"github.com/spinsolve/nmrpath/pkg/wigner"
)

// ConnectionWeight computes the complex amplitude with which a mixing
// query connects transition `from` to transition `to` on the given
// system.
//
// For an explicit rotation query the weight follows from the density
// operator transformation ρ → RρR† with R the product of per-channel
// rotations R = exp(-i(φ+π/2)Jz)·exp(-iθJy)·exp(+i(φ+π/2)Jz):
//
//	w = Π_sites d^I(m_i', m_i; θ)·d^I(m_f', m_f; θ)
//	    × Π_channels exp(i·(φ+π/2)·Δp)
//
// where Δp is the channel's coherence-order change between the two
// transitions. Sites whose isotope carries no rotation in the query
// are untouched by the pulse and must keep their state; pairs that
// change them get weight 0. A zero-angle rotation therefore connects
// only identical transitions, with weight 1.
func ConnectionWeight(
	from, to transition.Transition,
	sys *spin.System,
	channels []spin.Isotope,
	q query.MixingQuery,
) complex128 {
	switch q.Kind {
	case query.NoMixing:
		if from.Equal(to) {
			return 1
		}
		return 0
	case query.TotalMixing:
		return 1
	case query.Rotation:
		return rotationWeight(from, to, sys, channels, q.Channels)
	default:
		return 0
	}
}

func rotationWeight(
	from, to transition.Transition,
	sys *spin.System,
	channels []spin.Isotope,
	rotations map[int]query.RotationQuery,
) complex128 {
	// Channel order is fixed before multiplying so the accumulated
	// floating-point product is bit-for-bit reproducible.
	chOrder := make([]int, 0, len(rotations))
	for ch := range rotations {
		chOrder = append(chOrder, ch)
	}
	slices.Sort(chOrder)

	// Site index → rotation applied to its isotope's channel.
	siteRot := make(map[int]query.RotationQuery, len(sys.Sites))
	for _, ch := range chOrder {
		for _, i := range sys.SiteIndexes(channels[ch].Symbol) {
			siteRot[i] = rotations[ch]
		}
	}

	w := complex(1, 0)
	for i, site := range sys.Sites {
		rot, ok := siteRot[i]
		if !ok {
			// The pulse does not touch this site; its state must
			// survive the mixing event unchanged.
			if from.Initial[i] != to.Initial[i] ||
				from.Final[i] != to.Final[i] {
				return 0
			}
			continue
		}

		j := site.Isotope.Spin()
		amp := wigner.Element(j, to.Initial[i], from.Initial[i], rot.Angle) *
			wigner.Element(j, to.Final[i], from.Final[i], rot.Angle)
		if amp == 0 {
			return 0
		}
		w *= complex(amp, 0)
	}

	for _, ch := range chOrder {
		sites := sys.SiteIndexes(channels[ch].Symbol)
		dp := to.P(sites) - from.P(sites)
		phase := rotations[ch].Phase
		w *= cmplx.Exp(complex(0, (phase+math.Pi/2)*float64(dp)))
	}
	return w
}
