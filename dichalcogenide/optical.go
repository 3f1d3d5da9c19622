package dichalcogenide

import (
	"math"

	"github.com/katalvlaran/dichalcogenides/quantum"
)

// Physical constants for the optical matrix element.
const (
	// ElectronRestEnergy is m0 c² in GeV.
	ElectronRestEnergy = 0.51099895000e-3
	// HbarC is ħc in eV·Å.
	HbarC = 1973.269804
)

// Optical evaluates interband matrix elements for circularly polarized
// light in one valley. The spin is locked to the valley (s = τ), matching
// the upper valence band that carries the holes.
type Optical struct {
	d   *Dichalcogenide
	tau quantum.Valley
}

// OpticalOption configures an Optical model.
type OpticalOption func(*Optical)

// WithValley selects the valley τ. Default: quantum.K.
func WithValley(tau quantum.Valley) OpticalOption {
	return func(o *Optical) { o.tau = tau }
}

// NewOptical returns the optical model of d.
func NewOptical(d *Dichalcogenide, opts ...OpticalOption) (*Optical, error) {
	o := &Optical{d: d, tau: quantum.K}
	for _, opt := range opts {
		opt(o)
	}
	if err := quantum.Check("τ", o.tau); err != nil {
		return nil, err
	}

	return o, nil
}

// Valley returns τ.
func (o *Optical) Valley() quantum.Valley { return o.tau }

// P0Squared is (m0 a t / ħ)² expressed in GeV².
func (o *Optical) P0Squared() float64 {
	p0 := ElectronRestEnergy * o.d.params.At() / HbarC
	return p0 * p0
}

// cosTheta returns cos θ for an energy e measured on band n:
// n (2e − τsλ) = √(Δ'² + (2atk)²).
func (o *Optical) cosTheta(e float64, n quantum.Band) float64 {
	p := o.d.params
	dp := p.Gap - p.SpinOrbit // τs = +1
	return float64(n) * dp / (2*e - p.SpinOrbit)
}

// PCircular returns |P_v|² (GeV²) at energy e for helicity v, mapping e to
// momentum through band n. The result is a square and never negative; at
// e = λ/2 it is +Inf.
func (o *Optical) PCircular(e float64, n quantum.Band, v quantum.Helicity) (float64, error) {
	if err := quantum.Check("n", n); err != nil {
		return math.NaN(), err
	}
	if err := quantum.Check("v", v); err != nil {
		return math.NaN(), err
	}

	f := 1 + float64(int(v)*int(o.tau))*o.cosTheta(e, n)
	return o.P0Squared() * f * f, nil
}

// Dichroism returns (P₊² − P₋²)/(P₊² + P₋²) ∈ [−1, 1], NaN when both vanish
// or diverge.
func (o *Optical) Dichroism(e float64, n quantum.Band) (float64, error) {
	plus, err := o.PCircular(e, n, quantum.Right)
	if err != nil {
		return math.NaN(), err
	}
	minus, err := o.PCircular(e, n, quantum.Left)
	if err != nil {
		return math.NaN(), err
	}

	return DichroismRatio(plus, minus), nil
}

// DichroismRatio combines two channel intensities into (p − m)/(p + m).
func DichroismRatio(plus, minus float64) float64 {
	return (plus - minus) / (plus + minus)
}
