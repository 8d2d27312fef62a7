package iomethod

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spinsolve/nmrpath/internal/iofs"
	"github.com/spinsolve/nmrpath/pkg/method"
	"github.com/spinsolve/nmrpath/pkg/query"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

type methodWire struct {
	Name                string          `yaml:"name"`
	Description         string          `yaml:"description"`
	Channels            []string        `yaml:"channels"`
	MagneticFluxDensity string          `yaml:"magnetic_flux_density"`
	RotorAngle          string          `yaml:"rotor_angle"`
	RotorFrequency      string          `yaml:"rotor_frequency"`
	SpectralDimensions  []dimensionWire `yaml:"spectral_dimensions"`
}

type dimensionWire struct {
	Count           int         `yaml:"count"`
	SpectralWidth   string      `yaml:"spectral_width"`
	ReferenceOffset string      `yaml:"reference_offset"`
	Label           string      `yaml:"label"`
	Events          []eventWire `yaml:"events"`
}

// eventWire carries both event kinds; the presence of a query key
// marks a mixing event, everything else is spectral.
type eventWire struct {
	Fraction          *float64                  `yaml:"fraction"`
	RotorFrequency    string                    `yaml:"rotor_frequency"`
	TransitionQueries []map[string]symmetryWire `yaml:"transition_queries"`
	Query             *yaml.Node                `yaml:"query"`
}

type symmetryWire struct {
	P []int `yaml:"P"`
	D []int `yaml:"D"`
}

type rotationWire struct {
	Angle string `yaml:"angle"`
	Phase string `yaml:"phase"`
}

// LoadMethod reads a YAML method file. Isotope symbols of the channels
// resolve against the registry.
func LoadMethod(reg *spin.Registry, path string) (*method.Method, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	var w methodWire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, NewParseError(path, err)
	}

	m, err := parseMethod(reg, w)
	if err != nil {
		return nil, MethodFileError(path, err)
	}
	return m, nil
}

func parseMethod(reg *spin.Registry, w methodWire) (*method.Method, error) {
	m := &method.Method{
		Name:        w.Name,
		Description: w.Description,
	}

	for _, symbol := range w.Channels {
		iso, err := reg.Lookup(symbol)
		if err != nil {
			return nil, err
		}
		m.Channels = append(m.Channels, iso)
	}

	var err error
	if w.MagneticFluxDensity != "" {
		m.MagneticFluxDensity, err = parseFluxDensity(w.MagneticFluxDensity)
		if err != nil {
			return nil, err
		}
	}
	if w.RotorAngle != "" {
		m.RotorAngle, err = parseAngle(w.RotorAngle)
		if err != nil {
			return nil, err
		}
	}
	if w.RotorFrequency != "" {
		m.RotorFrequency, err = parseFrequency(w.RotorFrequency)
		if err != nil {
			return nil, err
		}
	}

	for i, dw := range w.SpectralDimensions {
		dim, err := parseDimension(dw)
		if err != nil {
			return nil, fmt.Errorf("spectral dimension %d: %w", i+1, err)
		}
		m.SpectralDimensions = append(m.SpectralDimensions, dim)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseDimension(w dimensionWire) (method.SpectralDimension, error) {
	var zero method.SpectralDimension

	dim := method.SpectralDimension{
		Count: w.Count,
		Label: w.Label,
	}

	var err error
	if w.SpectralWidth != "" {
		dim.SpectralWidth, err = parseFrequency(w.SpectralWidth)
		if err != nil {
			return zero, err
		}
	}
	if w.ReferenceOffset != "" {
		dim.ReferenceOffset, err = parseFrequency(w.ReferenceOffset)
		if err != nil {
			return zero, err
		}
	}

	for i, ew := range w.Events {
		ev, err := parseEvent(ew)
		if err != nil {
			return zero, fmt.Errorf("event %d: %w", i+1, err)
		}
		dim.Events = append(dim.Events, ev)
	}
	return dim, nil
}

func parseEvent(w eventWire) (method.Event, error) {
	if w.Query != nil {
		return parseMixingEvent(w)
	}
	return parseSpectralEvent(w)
}

func parseSpectralEvent(w eventWire) (method.Event, error) {
	ev := method.SpectralEvent{Fraction: 1}
	if w.Fraction != nil {
		ev.Fraction = *w.Fraction
	}

	if w.RotorFrequency != "" {
		freq, err := parseFrequency(w.RotorFrequency)
		if err != nil {
			return nil, err
		}
		ev.RotorFrequency = &freq
	}

	for i, qw := range w.TransitionQueries {
		q, err := parseTransitionQuery(qw)
		if err != nil {
			return nil, fmt.Errorf("transition query %d: %w", i+1, err)
		}
		ev.Queries = append(ev.Queries, q)
	}
	return ev, nil
}

func parseTransitionQuery(
	w map[string]symmetryWire,
) (query.TransitionQuery, error) {
	q := query.TransitionQuery{Channels: make(map[int]query.Symmetry)}
	for key, sym := range w {
		ch, err := parseChannelKey(key)
		if err != nil {
			return query.TransitionQuery{}, err
		}
		q.Channels[ch] = query.Symmetry{P: sym.P, D: sym.D}
	}
	return q, nil
}

func parseMixingEvent(w eventWire) (method.Event, error) {
	node := w.Query

	if node.Kind == yaml.ScalarNode {
		switch strings.TrimSpace(node.Value) {
		case "NoMixing":
			return method.MixingEvent{
				Query: query.MixingQuery{Kind: query.NoMixing},
			}, nil
		case "TotalMixing":
			return method.MixingEvent{
				Query: query.MixingQuery{Kind: query.TotalMixing},
			}, nil
		}
		return nil, fmt.Errorf(
			"unrecognized mixing query %q, expected NoMixing, "+
				"TotalMixing, or per-channel rotations", node.Value,
		)
	}

	var rotations map[string]rotationWire
	if err := node.Decode(&rotations); err != nil {
		return nil, fmt.Errorf("cannot parse mixing query: %w", err)
	}

	channels := make(map[int]query.RotationQuery)
	for key, rw := range rotations {
		ch, err := parseChannelKey(key)
		if err != nil {
			return nil, err
		}

		var rot query.RotationQuery
		if rw.Angle != "" {
			if rot.Angle, err = parseAngle(rw.Angle); err != nil {
				return nil, err
			}
		}
		if rw.Phase != "" {
			if rot.Phase, err = parseAngle(rw.Phase); err != nil {
				return nil, err
			}
		}
		channels[ch] = rot
	}
	return method.MixingEvent{
		Query: query.NewRotationMixing(channels),
	}, nil
}

// parseChannelKey converts a ch1..ch3 query key to a 0-based channel
// index.
func parseChannelKey(key string) (int, error) {
	valid := make([]string, method.MaxChannels)
	for i := range valid {
		valid[i] = fmt.Sprintf("ch%d", i+1)
	}
	sort.Strings(valid)

	if !strings.HasPrefix(key, "ch") {
		return 0, fmt.Errorf(
			"unrecognized channel key %q, expected one of %s",
			key, strings.Join(valid, ", "),
		)
	}
	n, err := strconv.Atoi(key[2:])
	if err != nil || n < 1 || n > method.MaxChannels {
		return 0, fmt.Errorf(
			"unrecognized channel key %q, expected one of %s",
			key, strings.Join(valid, ", "),
		)
	}
	return n - 1, nil
}
