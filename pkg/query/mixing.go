package query

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// MixingKind tags the closed set of mixing rules.
type MixingKind int

const (
	// NoMixing keeps only identical transition pairs, weight 1.
	NoMixing MixingKind = iota

	// TotalMixing connects every transition to every other, weight 1.
	TotalMixing

	// Rotation computes the connection weight from an explicit pulse
	// rotation (angle, phase) per channel.
	Rotation
)

// String implements fmt.Stringer for log and error output.
func (k MixingKind) String() string {
	switch k {
	case NoMixing:
		return "NoMixing"
	case TotalMixing:
		return "TotalMixing"
	case Rotation:
		return "Rotation"
	default:
		return fmt.Sprintf("MixingKind(%d)", int(k))
	}
}

// RotationQuery is a pulse rotation on one channel: tip angle and
// phase, both in radians.
type RotationQuery struct {
	Angle float64
	Phase float64
}

// MixingQuery is the rule a mixing event applies between the
// transitions of the surrounding spectral events. Channels is
// populated only for the Rotation kind, keyed by 0-based method
// channel index. Sites whose isotope carries no rotation must keep
// their spin state across the mixing event.
type MixingQuery struct {
	Kind     MixingKind
	Channels map[int]RotationQuery
}

// NewRotationMixing builds an explicit rotation mixing query.
func NewRotationMixing(channels map[int]RotationQuery) MixingQuery {
	return MixingQuery{Kind: Rotation, Channels: channels}
}

// Validate rejects unrecognized mixing kinds and rotation queries
// referencing channels outside the method's channel list or absent
// from the spin system.
func (q MixingQuery) Validate(
	sys *spin.System,
	channels []spin.Isotope,
) error {
	switch q.Kind {
	case NoMixing, TotalMixing:
		return nil
	case Rotation:
		for ch := range q.Channels {
			if ch < 0 || ch >= len(channels) {
				return malformedQueryError(fmt.Errorf(
					"mixing query references channel %d, method has %d channels",
					ch+1, len(channels),
				))
			}
			symbol := channels[ch].Symbol
			if len(sys.SiteIndexes(symbol)) == 0 {
				return malformedQueryError(fmt.Errorf(
					"mixing query references channel %d (%s) absent from spin system",
					ch+1, symbol,
				))
			}
		}
		return nil
	default:
		return &gn.Error{
			Code: errcode.UnknownMixingError,
			Msg:  "Unrecognized mixing query kind <em>%v</em>",
			Vars: []any{q.Kind},
			Err:  fmt.Errorf("unrecognized mixing query kind: %v", q.Kind),
		}
	}
}
