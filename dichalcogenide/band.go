package dichalcogenide

import "github.com/katalvlaran/dichalcogenides/quantum"

// UpperValenceBand is the n=−1, τ=+1, s=+1 branch; by time reversal the
// τ=−1, s=−1 branch is degenerate with it. Hole doping places μ here.
type UpperValenceBand struct {
	Dispersion
	cutoff float64
	mu     *float64
}

// UVBLabels are the quantum numbers of the upper valence band at +K.
var UVBLabels = quantum.Labels{N: quantum.Valence, Tau: quantum.K, S: quantum.Up}

// NewUpperValenceBand returns the upper valence band of d.
func NewUpperValenceBand(d *Dichalcogenide) *UpperValenceBand {
	return &UpperValenceBand{
		Dispersion: newDispersion(d, UVBLabels),
		cutoff:     d.params.Cutoff,
		mu:         d.params.ChemicalPotential,
	}
}

// Top is the band maximum λ − Δ/2.
func (u *UpperValenceBand) Top() float64 { return u.Edge() }

// Bottom is the band energy at the momentum cutoff k_c.
func (u *UpperValenceBand) Bottom() float64 { return u.E(u.cutoff) }

// Cutoff is k_c.
func (u *UpperValenceBand) Cutoff() float64 { return u.cutoff }

// Mu is the configured chemical potential, or Top when none is set.
func (u *UpperValenceBand) Mu() float64 {
	if u.mu != nil {
		return *u.mu
	}

	return u.Top()
}

// Xi returns the detuning e − μ.
func (u *UpperValenceBand) Xi(e float64) float64 { return e - u.Mu() }

// XiBounds returns (Bottom − μ, Top − μ).
func (u *UpperValenceBand) XiBounds() (float64, float64) {
	mu := u.Mu()
	return u.Bottom() - mu, u.Top() - mu
}
