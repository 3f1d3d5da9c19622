package dichalcogenide

import (
	"math"

	"github.com/katalvlaran/dichalcogenides/quantum"
)

// Topology evaluates the momentum-space Berry curvature.
type Topology struct {
	e *Energy
}

// NewTopology returns the curvature model of d.
func NewTopology(d *Dichalcogenide) *Topology {
	return &Topology{e: NewEnergy(d)}
}

// Omega returns Ω(k) in Å² for band n at valley τ and spin s. It flips sign
// under n → −n and under (τ, s) → (−τ, −s).
func (t *Topology) Omega(k float64, n quantum.Band, tau quantum.Valley, s quantum.Spin) (float64, error) {
	b, err := t.e.Branch(n, tau, s)
	if err != nil {
		return math.NaN(), err
	}

	return b.Omega(k), nil
}

// OmegaAtEnergy maps en to momentum on branch (n, τ, s) and returns Ω there.
// NaN when en is not in band n.
func (t *Topology) OmegaAtEnergy(en float64, n quantum.Band, tau quantum.Valley, s quantum.Spin) (float64, error) {
	b, err := t.e.Branch(n, tau, s)
	if err != nil {
		return math.NaN(), err
	}

	return b.Omega(b.K(en)), nil
}
