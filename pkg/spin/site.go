package spin

// SymmetricTensor is the symmetric part of a shielding tensor given in
// the Haeberlen convention: anisotropy zeta (ppm), asymmetry eta in
// [0, 1], and Euler angles (rad) orienting the tensor in the crystal
// frame.
type SymmetricTensor struct {
	Zeta  float64 `json:"zeta" yaml:"zeta"`
	Eta   float64 `json:"eta" yaml:"eta"`
	Alpha float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta  float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	Gamma float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// QuadrupolarTensor describes the electric field gradient at a
// quadrupolar site: coupling constant Cq (Hz), asymmetry eta in
// [0, 1], and Euler angles (rad).
type QuadrupolarTensor struct {
	Cq    float64 `json:"Cq" yaml:"Cq"`
	Eta   float64 `json:"eta" yaml:"eta"`
	Alpha float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta  float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	Gamma float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// Site is a single nuclear spin location: an isotope plus the
// interaction tensors used by the downstream spectrum synthesis. The
// pathway-resolution core only reads the Isotope field.
type Site struct {
	Isotope Isotope

	// IsotropicChemicalShift in ppm.
	IsotropicChemicalShift float64

	// ShieldingSymmetric is the symmetric shielding tensor, nil when
	// the site has no shielding anisotropy.
	ShieldingSymmetric *SymmetricTensor

	// Quadrupolar is the quadrupolar coupling tensor, nil for
	// spin-1/2 sites.
	Quadrupolar *QuadrupolarTensor

	// Label is an optional user annotation.
	Label string
}

// NewSite resolves the isotope symbol against the registry and returns
// a bare site. Unresolvable symbols surface UnknownIsotopeError here,
// before any pathway work begins.
func NewSite(reg *Registry, symbol string) (Site, error) {
	iso, err := reg.Lookup(symbol)
	if err != nil {
		return Site{}, err
	}
	return Site{Isotope: iso}, nil
}
