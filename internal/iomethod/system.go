// Package iomethod loads methods and spin systems from YAML files.
//
// Physical quantities in the files are "value unit" scalars
// ("9.4 T", "54.7356 deg", "10 kHz"); a bare number is taken in the
// quantity's base unit. Transition queries address method channels as
// ch1, ch2, ch3.
package iomethod

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spinsolve/nmrpath/internal/iofs"
	"github.com/spinsolve/nmrpath/pkg/spin"
)

type systemsFile struct {
	SpinSystems []systemWire `yaml:"spin_systems"`
}

type systemWire struct {
	Name      string     `yaml:"name"`
	Abundance string     `yaml:"abundance"`
	Sites     []siteWire `yaml:"sites"`
}

type siteWire struct {
	Isotope                string      `yaml:"isotope"`
	IsotropicChemicalShift string      `yaml:"isotropic_chemical_shift"`
	ShieldingSymmetric     *tensorWire `yaml:"shielding_symmetric"`
	Quadrupolar            *tensorWire `yaml:"quadrupolar"`
	Label                  string      `yaml:"label"`
}

type tensorWire struct {
	Zeta  string  `yaml:"zeta"`
	Cq    string  `yaml:"Cq"`
	Eta   float64 `yaml:"eta"`
	Alpha string  `yaml:"alpha"`
	Beta  string  `yaml:"beta"`
	Gamma string  `yaml:"gamma"`
}

// LoadSystems reads a YAML file with a spin_systems list and returns
// the parsed systems. Isotope symbols resolve against the registry.
func LoadSystems(reg *spin.Registry, path string) ([]*spin.System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	var file systemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, NewParseError(path, err)
	}
	if len(file.SpinSystems) == 0 {
		return nil, SystemFileError(
			path, fmt.Errorf("no spin_systems entries found"),
		)
	}

	res := make([]*spin.System, 0, len(file.SpinSystems))
	for i, w := range file.SpinSystems {
		sys, err := parseSystem(reg, w)
		if err != nil {
			return nil, SystemFileError(
				path, fmt.Errorf("spin system %d: %w", i+1, err),
			)
		}
		res = append(res, sys)
	}
	return res, nil
}

func parseSystem(reg *spin.Registry, w systemWire) (*spin.System, error) {
	if len(w.Sites) == 0 {
		return nil, fmt.Errorf("no sites found")
	}

	sites := make([]spin.Site, 0, len(w.Sites))
	for i, sw := range w.Sites {
		site, err := parseSite(reg, sw)
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", i+1, err)
		}
		sites = append(sites, site)
	}

	sys := spin.NewSystem(sites...)
	sys.Name = w.Name
	if w.Abundance != "" {
		abundance, err := parsePercent(w.Abundance)
		if err != nil {
			return nil, err
		}
		sys.Abundance = abundance
	}
	return sys, nil
}

func parseSite(reg *spin.Registry, w siteWire) (spin.Site, error) {
	site, err := spin.NewSite(reg, w.Isotope)
	if err != nil {
		return spin.Site{}, err
	}
	site.Label = w.Label

	if w.IsotropicChemicalShift != "" {
		shift, err := parseShift(w.IsotropicChemicalShift)
		if err != nil {
			return spin.Site{}, err
		}
		site.IsotropicChemicalShift = shift
	}

	if w.ShieldingSymmetric != nil {
		tensor, err := parseShieldingTensor(*w.ShieldingSymmetric)
		if err != nil {
			return spin.Site{}, err
		}
		site.ShieldingSymmetric = tensor
	}

	if w.Quadrupolar != nil {
		tensor, err := parseQuadrupolarTensor(*w.Quadrupolar)
		if err != nil {
			return spin.Site{}, err
		}
		if !site.Isotope.IsQuadrupolar() {
			return spin.Site{}, fmt.Errorf(
				"quadrupolar tensor on spin-1/2 isotope %s",
				site.Isotope.Symbol,
			)
		}
		site.Quadrupolar = tensor
	}

	return site, nil
}

func parseShieldingTensor(w tensorWire) (*spin.SymmetricTensor, error) {
	res := &spin.SymmetricTensor{Eta: w.Eta}
	var err error

	if w.Zeta != "" {
		if res.Zeta, err = parseShift(w.Zeta); err != nil {
			return nil, err
		}
	}
	if err = parseEulerAngles(
		w, &res.Alpha, &res.Beta, &res.Gamma,
	); err != nil {
		return nil, err
	}
	return res, nil
}

func parseQuadrupolarTensor(w tensorWire) (*spin.QuadrupolarTensor, error) {
	res := &spin.QuadrupolarTensor{Eta: w.Eta}
	var err error

	if w.Cq != "" {
		if res.Cq, err = parseFrequency(w.Cq); err != nil {
			return nil, err
		}
	}
	if err = parseEulerAngles(
		w, &res.Alpha, &res.Beta, &res.Gamma,
	); err != nil {
		return nil, err
	}
	return res, nil
}

func parseEulerAngles(
	w tensorWire,
	alpha, beta, gamma *float64,
) error {
	var err error
	if w.Alpha != "" {
		if *alpha, err = parseAngle(w.Alpha); err != nil {
			return err
		}
	}
	if w.Beta != "" {
		if *beta, err = parseAngle(w.Beta); err != nil {
			return err
		}
	}
	if w.Gamma != "" {
		if *gamma, err = parseAngle(w.Gamma); err != nil {
			return err
		}
	}
	return nil
}
