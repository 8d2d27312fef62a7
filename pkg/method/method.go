// Package method models NMR pulse-sequence methods - spectral
// dimensions composed of spectral and mixing events - and resolves
// them against spin systems into weighted transition pathways.
package method

import (
	"fmt"
	"math"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
	"github.com/spinsolve/nmrpath/pkg/query"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

// MaxSpectralDimensions is the supported number of spectral
// dimensions per method.
const MaxSpectralDimensions = 2

// MaxChannels is the supported number of observed channels per
// method; serialized queries address them as ch1..ch3.
const MaxChannels = 3

// Event is one element of a spectral dimension: either a SpectralEvent
// or a MixingEvent. The set is closed; resolution dispatches over it
// exhaustively.
type Event interface {
	isEvent()
}

// SpectralEvent selects a set of transitions through its transition
// queries, combined disjunctively. An event without queries passes
// only population terms.
type SpectralEvent struct {
	// Fraction of the dimension's evolution time spent in this
	// event. Fractions of a dimension sum to 1.
	Fraction float64

	// RotorFrequency in Hz, overriding the method-level value for
	// this event when set. Use math.Inf(1) for infinite-speed
	// idealization.
	RotorFrequency *float64

	// Queries are the transition queries of the event.
	Queries []query.TransitionQuery
}

func (SpectralEvent) isEvent() {}

// MixingEvent connects the transition sets of the surrounding spectral
// events through its mixing query. It does not occupy a pathway slot.
type MixingEvent struct {
	Query query.MixingQuery
}

func (MixingEvent) isEvent() {}

// SpectralDimension is an ordered sequence of events sampled in one
// acquisition dimension, plus the geometric parameters handed to the
// downstream synthesis stage.
type SpectralDimension struct {
	// Count of points sampled in the dimension.
	Count int

	// SpectralWidth in Hz.
	SpectralWidth float64

	// ReferenceOffset in Hz.
	ReferenceOffset float64

	// Label is an optional axis annotation.
	Label string

	Events []Event
}

// Method is an ordered sequence of spectral dimensions plus the list
// of observed channels. Dimension order defines pathway segment order;
// all dimensions concatenate into one pathway.
type Method struct {
	Name        string
	Description string

	// Channels are the observed isotopes; queries address them by
	// index (ch1 = index 0).
	Channels []spin.Isotope

	// MagneticFluxDensity in T.
	MagneticFluxDensity float64

	// RotorAngle in rad relative to the magnetic field.
	RotorAngle float64

	// RotorFrequency in Hz, inherited by spectral events that do not
	// override it.
	RotorFrequency float64

	SpectralDimensions []SpectralDimension
}

// Validate checks the method's structural constraints: channel count,
// dimension count, and the single-spinning-speed rule (at most one
// distinct non-zero finite rotor frequency across all spectral
// events).
func (m *Method) Validate() error {
	if len(m.Channels) == 0 || len(m.Channels) > MaxChannels {
		return methodError(fmt.Errorf(
			"method requires between 1 and %d channels, got %d",
			MaxChannels, len(m.Channels),
		))
	}
	if len(m.SpectralDimensions) == 0 {
		return methodError(fmt.Errorf(
			"method requires at least one spectral dimension, none found",
		))
	}
	if len(m.SpectralDimensions) > MaxSpectralDimensions {
		return methodError(fmt.Errorf(
			"a maximum of %d spectral dimensions is supported, got %d",
			MaxSpectralDimensions, len(m.SpectralDimensions),
		))
	}
	return m.validateRotorFrequencies()
}

func (m *Method) validateRotorFrequencies() error {
	var speeds []float64
	add := func(f float64) {
		if f == 0 || math.IsInf(f, 1) {
			return
		}
		for _, s := range speeds {
			if s == f {
				return
			}
		}
		speeds = append(speeds, f)
	}

	for _, dim := range m.SpectralDimensions {
		for _, ev := range dim.Events {
			se, ok := ev.(SpectralEvent)
			if !ok {
				continue
			}
			if se.RotorFrequency != nil {
				add(*se.RotorFrequency)
			} else {
				add(m.RotorFrequency)
			}
		}
	}
	if len(speeds) > 1 {
		return methodError(fmt.Errorf(
			"only one non-zero finite rotor frequency is supported per method, got %v",
			speeds,
		))
	}
	return nil
}

func methodError(err error) error {
	return &gn.Error{
		Code: errcode.MethodValidationError,
		Msg:  "Invalid method: %v",
		Vars: []any{err},
		Err:  fmt.Errorf("invalid method: %w", err),
	}
}
