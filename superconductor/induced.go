package superconductor

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
)

// ErrMissingPairing indicates a material loaded without pairing parameters
// (Δ0 = 0), typically because no "induced" system was requested.
var ErrMissingPairing = errors.New("superconductor: material has no induced pairing gap")

// Induced is the pairing transform bound to one material.
type Induced struct {
	energy *dichalcogenide.Energy
	delta0 float64
	width  float64
}

// NewInduced returns the transform of d. d must carry a positive pairing gap.
func NewInduced(d *dichalcogenide.Dichalcogenide) (*Induced, error) {
	p := d.Params()
	if p.PairingGap <= 0 {
		return nil, fmt.Errorf("%s: %w", d, ErrMissingPairing)
	}

	return &Induced{
		energy: dichalcogenide.NewEnergy(d),
		delta0: p.PairingGap,
		width:  p.PairingWidth,
	}, nil
}

// Delta0 is the pairing gap amplitude at the valley center.
func (s *Induced) Delta0() float64 { return s.delta0 }

// DeltaK returns the gap scale at momentum k: Δ0 for zero width, otherwise
// Δ0·exp(−k²/2w²).
func (s *Induced) DeltaK(k float64) float64 {
	if s.width == 0 {
		return s.delta0
	}

	return s.delta0 * math.Exp(-k*k/(2*s.width*s.width))
}

// Trig is the package Trig; kept on the type for call-site symmetry.
func (s *Induced) Trig(expr string) (TrigFunc, error) { return Trig(expr) }

// Xi returns the normal-state detuning Δk − √(Δk² + λk²) ≤ 0.
func (s *Induced) Xi(dk, lk float64) float64 { return dk - QuasiparticleEnergy(dk, lk) }

// LambdaK inverts Xi on the λk ≥ 0 branch; NaN when xi > 0.
func (s *Induced) LambdaK(dk, xi float64) float64 {
	if xi > 0 {
		return math.NaN()
	}
	u := dk - xi

	return math.Sqrt(u*u - dk*dk)
}

// LambdaKBounds returns (0, λmax) where Xi(dk, λmax) equals the lower
// detuning bound of the upper valence band.
func (s *Induced) LambdaKBounds(dk float64) (float64, float64) {
	lo, _ := s.energy.XiBounds()

	return 0, s.LambdaK(dk, lo)
}

// Mu is the chemical potential the detunings are measured from.
func (s *Induced) Mu() float64 { return s.energy.Mu() }
