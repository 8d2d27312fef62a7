package spin

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"sync"

	"github.com/gnames/gn"
	"github.com/spinsolve/nmrpath/pkg/errcode"
)

//go:embed isotope_data.json
var isotopeDataJSON []byte

var symbolRe = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

// Registry holds isotope data keyed by symbol. It starts populated
// with the built-in isotope table and accepts custom isotopes through
// Register. Lookups may happen concurrently; registrations are
// serialized and reject symbol collisions without mutating the
// registry.
type Registry struct {
	mu   sync.RWMutex
	data map[string]Isotope
}

// NewRegistry returns a registry populated with the built-in isotope
// table.
func NewRegistry() *Registry {
	data := make(map[string]Isotope)
	var raw map[string]Isotope
	if err := json.Unmarshal(isotopeDataJSON, &raw); err != nil {
		// The table is a compile-time asset; a parse failure is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("spin: bad embedded isotope table: %v", err))
	}
	for symbol, iso := range raw {
		iso.Symbol = symbol
		data[symbol] = iso
	}
	return &Registry{data: data}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry. Callers that need
// isolation (tests, embedding applications) should create their own
// with NewRegistry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Lookup returns the isotope for the given symbol. The symbol is
// normalized to the {mass_number}{element} form first, so "13 C"
// resolves to "13C". Custom symbols are matched verbatim.
func (r *Registry) Lookup(symbol string) (Isotope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if iso, ok := r.data[symbol]; ok {
		return iso, nil
	}
	if norm, ok := normalizeSymbol(symbol); ok {
		if iso, ok := r.data[norm]; ok {
			return iso, nil
		}
	}
	return Isotope{}, unknownIsotopeError(symbol)
}

// Register adds a custom isotope to the registry. The symbol must not
// collide with a built-in or previously registered isotope; on
// collision the registry is left unchanged.
func (r *Registry) Register(iso Isotope) error {
	if err := iso.validate(); err != nil {
		return &gn.Error{
			Code: errcode.IsotopeDataError,
			Msg:  "Invalid isotope data for <em>%s</em>",
			Vars: []any{iso.Symbol},
			Err:  fmt.Errorf("cannot register isotope: %w", err),
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[iso.Symbol]; ok {
		return &gn.Error{
			Code: errcode.SymbolCollisionError,
			Msg: "Symbol <em>%s</em> is already attributed to another " +
				"isotope, all isotope symbols must be unique",
			Vars: []any{iso.Symbol},
			Err: fmt.Errorf(
				"symbol collision on isotope registration: %s", iso.Symbol,
			),
		}
	}
	r.data[iso.Symbol] = iso
	return nil
}

// Symbols returns all registered isotope symbols in sorted order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]string, 0, len(r.data))
	for symbol := range r.data {
		res = append(res, symbol)
	}
	slices.Sort(res)
	return res
}

// normalizeSymbol rewrites an isotope string to the canonical
// {mass_number}{element} form. It reports false when the string does
// not follow the pattern at all.
func normalizeSymbol(symbol string) (string, bool) {
	m := symbolRe.FindStringSubmatch(symbol)
	if m == nil {
		return "", false
	}
	return m[1] + m[2], true
}

func unknownIsotopeError(symbol string) error {
	return &gn.Error{
		Code: errcode.UnknownIsotopeError,
		Msg:  "<em>%s</em> is an unrecognized isotope symbol",
		Vars: []any{symbol},
		Err:  fmt.Errorf("unknown isotope symbol: %q", symbol),
	}
}
