package ioresolve

import (
	"fmt"
	"os"

	"github.com/gnames/gnfmt"

	"github.com/spinsolve/nmrpath/internal/iofs"
)

// WriteJSON encodes the resolved ensemble as pretty-printed JSON. An
// empty path or "-" writes to STDOUT.
func WriteJSON(path string, results []Resolved) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(results)
	if err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}
