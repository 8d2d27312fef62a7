package ioisotopes

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
)

func ImportError(path string, err error) error {
	msg := "Cannot import isotopes from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IsotopeImportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot import isotopes from %s: %w",
			fn, path, err),
	}
}
