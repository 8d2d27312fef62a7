package iomethod

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// quantityRe splits a "value unit" scalar into its numeric and unit
// parts. The unit part is optional.
var quantityRe = regexp.MustCompile(
	`^([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|[+-]?inf)\s*(.*)$`,
)

// parseQuantity splits a scalar like "9.4 T" or "54.7356 deg" into its
// numeric value and unit string. A bare number yields an empty unit.
func parseQuantity(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	m := quantityRe.FindStringSubmatch(s)
	if m == nil {
		return 0, "", fmt.Errorf("cannot parse quantity %q", s)
	}

	var val float64
	switch m[1] {
	case "inf", "+inf":
		val = math.Inf(1)
	case "-inf":
		val = math.Inf(-1)
	default:
		var err error
		val, err = strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, "", fmt.Errorf("cannot parse quantity %q: %w", s, err)
		}
	}
	return val, strings.TrimSpace(m[2]), nil
}

// parseFrequency converts a frequency scalar to Hz. Accepted units:
// Hz, kHz, MHz, GHz. A bare number is taken as Hz.
func parseFrequency(s string) (float64, error) {
	val, unit, err := parseQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "Hz":
		return val, nil
	case "kHz":
		return val * 1e3, nil
	case "MHz":
		return val * 1e6, nil
	case "GHz":
		return val * 1e9, nil
	}
	return 0, unitError(s, unit, "Hz, kHz, MHz, GHz")
}

// parseAngle converts an angle scalar to radians. Accepted units:
// rad, deg, °. A bare number is taken as radians.
func parseAngle(s string) (float64, error) {
	val, unit, err := parseQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "rad":
		return val, nil
	case "deg", "°":
		return val * math.Pi / 180, nil
	}
	return 0, unitError(s, unit, "rad, deg")
}

// parseFluxDensity converts a magnetic flux density scalar to T.
func parseFluxDensity(s string) (float64, error) {
	val, unit, err := parseQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "T":
		return val, nil
	case "mT":
		return val * 1e-3, nil
	}
	return 0, unitError(s, unit, "T, mT")
}

// parseShift converts a chemical shift scalar to ppm.
func parseShift(s string) (float64, error) {
	val, unit, err := parseQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "ppm":
		return val, nil
	}
	return 0, unitError(s, unit, "ppm")
}

// parsePercent converts an abundance scalar to percent.
func parsePercent(s string) (float64, error) {
	val, unit, err := parseQuantity(s)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "%":
		return val, nil
	}
	return 0, unitError(s, unit, "%")
}
