package material

import (
	"fmt"
	"math"
)

// Supported material keys, lower case.
const (
	MoS2  = "mos2"
	MoSe2 = "mose2"
	WS2   = "ws2"
	WSe2  = "wse2"
)

// SystemInduced selects the proximity-induced pairing overlay.
const SystemInduced = "induced"

// Supported returns the material keys in a stable order.
func Supported() []string { return []string{MoS2, MoSe2, WS2, WSe2} }

func supported(key string) bool {
	for _, k := range Supported() {
		if k == key {
			return true
		}
	}

	return false
}

// Parameters are the constants of the two-band model. Energies are in eV,
// lengths in Å and momenta in 1/Å.
type Parameters struct {
	LatticeConstant float64 `yaml:"lattice_constant"` // a
	Hopping         float64 `yaml:"hopping"`          // t
	Gap             float64 `yaml:"gap"`              // Δ
	SpinOrbit       float64 `yaml:"spin_orbit"`       // λ
	Cutoff          float64 `yaml:"cutoff"`           // k_c

	// ChemicalPotential is μ; nil means the upper valence band top.
	ChemicalPotential *float64 `yaml:"chemical_potential,omitempty"`
	PairingGap        float64  `yaml:"pairing_gap"`   // Δ0
	PairingWidth      float64  `yaml:"pairing_width"` // Gaussian width of Δk; 0 is constant
}

// At returns the product a·t (eV·Å) that sets the Dirac velocity.
func (p Parameters) At() float64 { return p.LatticeConstant * p.Hopping }

// Validate checks physical ranges: a, t, Δ, k_c > 0; λ, Δ0, width ≥ 0;
// everything finite.
func (p Parameters) Validate() error {
	checks := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"lattice_constant", p.LatticeConstant, true},
		{"hopping", p.Hopping, true},
		{"gap", p.Gap, true},
		{"spin_orbit", p.SpinOrbit, false},
		{"cutoff", p.Cutoff, true},
		{"pairing_gap", p.PairingGap, false},
		{"pairing_width", p.PairingWidth, false},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 || (c.positive && c.v == 0) {
			return fmt.Errorf("%s=%v: %w", c.name, c.v, ErrInvalidParameter)
		}
	}
	if mu := p.ChemicalPotential; mu != nil && (math.IsNaN(*mu) || math.IsInf(*mu, 0)) {
		return fmt.Errorf("chemical_potential=%v: %w", *mu, ErrInvalidParameter)
	}

	return nil
}

// Material is an immutable named parameter set.
type Material struct {
	key    string
	name   string
	system string
	params Parameters
}

// New builds a Material directly from parameters, bypassing any Store.
func New(key, name, system string, p Parameters) (*Material, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	if p.ChemicalPotential != nil {
		mu := *p.ChemicalPotential
		p.ChemicalPotential = &mu
	}

	return &Material{key: key, name: name, system: system, params: p}, nil
}

// Key is the lower-case lookup key, e.g. "wse2".
func (m *Material) Key() string { return m.key }

// Name is the display name, e.g. "WSe₂".
func (m *Material) Name() string { return m.name }

// System is the variant the parameters were loaded with; "" for none.
func (m *Material) System() string { return m.system }

// Params returns a copy of the parameters.
func (m *Material) Params() Parameters {
	p := m.params
	if p.ChemicalPotential != nil {
		mu := *p.ChemicalPotential
		p.ChemicalPotential = &mu
	}

	return p
}

func (m *Material) String() string {
	if m.system == "" {
		return m.name
	}

	return m.name + " (" + m.system + ")"
}
