package dichalcogenide

import (
	"math"

	"github.com/katalvlaran/dichalcogenides/matrix"
	"github.com/katalvlaran/dichalcogenides/quantum"
)

// Tolerance and sweep cap for the Hamiltonian cross-check.
const (
	eigenTol     = 1e-13
	eigenMaxIter = 64

	// edgeSlack is the relative tolerance on x² − Δ'² at the band edge.
	edgeSlack = 1e-12
)

// Dispersion is one validated (n, τ, s) branch. All methods are pure and
// accept any float; out-of-domain inputs return NaN.
type Dispersion struct {
	quantum.Labels
	at, gap, lambda float64
}

// GapPrime is the spin–valley dependent gap Δ' = Δ − τ s λ.
func (b Dispersion) GapPrime() float64 { return b.gap - b.TauS()*b.lambda }

// E returns the band energy at momentum k.
func (b Dispersion) E(k float64) float64 {
	return 0.5 * (b.TauS()*b.lambda + float64(b.N)*math.Hypot(2*b.at*k, b.GapPrime()))
}

// K is the inverse of E on the k ≥ 0 branch. It returns NaN when e lies in
// the gap or belongs to the other band.
func (b Dispersion) K(e float64) float64 {
	x := 2*e - b.TauS()*b.lambda
	if x*float64(b.N) < 0 {
		return math.NaN()
	}
	dp := b.GapPrime()
	r := x*x - dp*dp
	if r < 0 {
		// Rounding at the band edge can leave r a few ulps below zero.
		if r < -edgeSlack*dp*dp {
			return math.NaN()
		}
		r = 0
	}

	return math.Sqrt(r) / (2 * b.at)
}

// Omega returns the Berry curvature (Å²) of the branch at momentum k.
func (b Dispersion) Omega(k float64) float64 {
	dp := b.GapPrime()
	q := 2 * b.at * k
	d := dp*dp + q*q

	return -float64(int(b.N)*int(b.Tau)) * 2 * b.at * b.at * dp / (d * math.Sqrt(d))
}

// Edge is the band-edge energy E(0).
func (b Dispersion) Edge() float64 { return b.E(0) }

// Energy evaluates the dispersion of one material.
type Energy struct {
	d   *Dichalcogenide
	uvb *UpperValenceBand
}

// NewEnergy returns the band energy model of d.
func NewEnergy(d *Dichalcogenide) *Energy {
	return &Energy{d: d, uvb: NewUpperValenceBand(d)}
}

// Branch validates (n, τ, s) and returns the matching dispersion.
func (e *Energy) Branch(n quantum.Band, tau quantum.Valley, s quantum.Spin) (Dispersion, error) {
	l := quantum.Labels{N: n, Tau: tau, S: s}
	if err := l.Validate(); err != nil {
		return Dispersion{}, err
	}

	return newDispersion(e.d, l), nil
}

func newDispersion(d *Dichalcogenide, l quantum.Labels) Dispersion {
	return Dispersion{Labels: l, at: d.params.At(), gap: d.params.Gap, lambda: d.params.SpinOrbit}
}

// E is the band energy (eV) at momentum k (1/Å).
func (e *Energy) E(k float64, n quantum.Band, tau quantum.Valley, s quantum.Spin) (float64, error) {
	b, err := e.Branch(n, tau, s)
	if err != nil {
		return math.NaN(), err
	}

	return b.E(k), nil
}

// K is the non-negative momentum with E(K(en)) = en, or NaN outside band n.
func (e *Energy) K(en float64, n quantum.Band, tau quantum.Valley, s quantum.Spin) (float64, error) {
	b, err := e.Branch(n, tau, s)
	if err != nil {
		return math.NaN(), err
	}

	return b.K(en), nil
}

// Mu is the chemical potential (see UpperValenceBand.Mu).
func (e *Energy) Mu() float64 { return e.uvb.Mu() }

// XiBounds returns the detuning range (min, max) relative to Mu.
func (e *Energy) XiBounds() (float64, float64) { return e.uvb.XiBounds() }

// Hamiltonian returns the real symmetric Bloch Hamiltonian at k along k_x.
func (e *Energy) Hamiltonian(k float64, tau quantum.Valley, s quantum.Spin) (*matrix.Dense, error) {
	if err := quantum.Check("τ", tau); err != nil {
		return nil, err
	}
	if err := quantum.Check("s", s); err != nil {
		return nil, err
	}
	p := e.d.params
	ts := float64(int(tau) * int(s))

	return matrix.NewSymmetric2(p.Gap/2, p.At()*float64(tau)*k, -p.Gap/2+p.SpinOrbit*ts), nil
}

// Diagonalize returns the (valence, conduction) energies at k obtained by
// numerically diagonalizing Hamiltonian.
func (e *Energy) Diagonalize(k float64, tau quantum.Valley, s quantum.Spin) ([2]float64, error) {
	h, err := e.Hamiltonian(k, tau, s)
	if err != nil {
		return [2]float64{}, err
	}
	vals, err := matrix.EigenValues(h, eigenTol, eigenMaxIter)
	if err != nil {
		return [2]float64{}, err
	}

	return [2]float64{vals[0], vals[1]}, nil
}
