package iomethod

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/spinsolve/nmrpath/pkg/errcode"
)

// ParseError is returned when an input file is not valid YAML; it
// carries a rich user-facing message with format guidance.
type ParseError struct {
	error
	gnlib.MessageBase
}

// NewParseError creates a parse error with user-friendly guidance.
func NewParseError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Parse Input File</title>

<warning>The file <em>%s</em> is not valid YAML.</warning>

<em>Expected layout:</em>
  • method files: name, channels, spectral_dimensions with events
  • spin system files: a spin_systems list with sites

<em>Physical quantities are "value unit" scalars:</em>
  magnetic_flux_density: 9.4 T
  rotor_angle: 54.7356 deg
  rotor_frequency: 10 kHz

<em>Tip:</em> Run <em>nmrpath resolve --help</em> for file examples.
`,
		[]any{path},
	)

	return ParseError{
		error:       fmt.Errorf("cannot parse %s: %w", path, cause),
		MessageBase: userBase,
	}
}

func unitError(quantity, unit, valid string) error {
	msg := "Unit <em>%s</em> in '%s' is not supported, valid units: %s"
	vars := []any{unit, quantity, valid}
	return &gn.Error{
		Code: errcode.UnitError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("unsupported unit %q in %q, valid units: %s",
			unit, quantity, valid),
	}
}

func MethodFileError(path string, err error) error {
	msg := "Cannot load method file <em>%s</em>: %v"
	vars := []any{path, err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MethodFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load method file %s: %w",
			fn, path, err),
	}
}

func SystemFileError(path string, err error) error {
	msg := "Cannot load spin system file <em>%s</em>: %v"
	vars := []any{path, err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SystemFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load spin system file %s: %w",
			fn, path, err),
	}
}
