package plots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/quantum"
	"github.com/katalvlaran/dichalcogenides/sample"
	"github.com/katalvlaran/dichalcogenides/superconductor"
)

// Default point counts of the induced-pairing figures.
const (
	DefaultPoints            = 100
	DefaultTransitionsPoints = 50
)

// pairingGrid samples λk over LambdaKBounds(Δk(0)) for sc.
func pairingGrid(sc *superconductor.Induced, n int) (dk float64, lk []float64, err error) {
	dk = sc.DeltaK(0)
	lo, hi := sc.LambdaKBounds(dk)
	lk, err = sample.Linspace(lo, hi, n)

	return dk, lk, err
}

// OpticalDichroism draws, per material, the circular dichroism of
// cos²β-weighted optical transitions at the detuning ξ(Δk, λk) against
// λk/Δk. Each material must carry induced pairing.
func OpticalDichroism(n int, ds ...*dichalcogenide.Dichalcogenide) (Figure, error) {
	fig := Figure{
		Name:   "optical-transitions",
		XLabel: "λk / Δ0",
		YLabel: "(P₊² − P₋²) / (P₊² + P₋²)",
		Legend: true,
	}
	cos2 := superconductor.MustTrig(superconductor.Cos2Beta)

	for _, d := range ds {
		sc, err := superconductor.NewInduced(d)
		if err != nil {
			return Figure{}, err
		}
		optical, err := dichalcogenide.NewOptical(d)
		if err != nil {
			return Figure{}, err
		}
		dk, lk, err := pairingGrid(sc, n)
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", d, err)
		}

		weighted := func(v quantum.Helicity, l float64) (float64, error) {
			p, err := optical.PCircular(sc.Xi(dk, l)+sc.Mu(), quantum.Conduction, v)
			return cos2(dk, l) * p, err
		}
		ys, err := sample.MapErr(lk, func(l float64) (float64, error) {
			plus, err := weighted(quantum.Right, l)
			if err != nil {
				return math.NaN(), err
			}
			minus, err := weighted(quantum.Left, l)
			if err != nil {
				return math.NaN(), err
			}

			return dichalcogenide.DichroismRatio(plus, minus), nil
		})
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", d, err)
		}

		fig.Series = append(fig.Series, Series{
			Label: d.Material().Name(),
			X:     sample.Scale(lk, 1/dk),
			Y:     ys,
			Style: StyleAuto,
		})
	}

	return fig, nil
}

// BerryCurvature draws, per material, sin⁶β · Ω(k) against λk. The momentum
// k is the one at which the upper valence band reaches ξ(Δk, λk) + μ, and Ω
// is taken on the (n, τ, s) = (+1, +1, +1) branch, so the curve is negative
// for λk > 0.
func BerryCurvature(n int, ds ...*dichalcogenide.Dichalcogenide) (Figure, error) {
	fig := Figure{
		Name:   "topology",
		XLabel: "λk (eV)",
		YLabel: "sin⁶β Ω (Å²)",
		Legend: true,
	}
	sin2 := superconductor.MustTrig(superconductor.Sin2Beta)

	for _, d := range ds {
		sc, err := superconductor.NewInduced(d)
		if err != nil {
			return Figure{}, err
		}
		topo := dichalcogenide.NewTopology(d)
		uvb := dichalcogenide.NewUpperValenceBand(d)
		dk, lk, err := pairingGrid(sc, n)
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", d, err)
		}

		ys, err := sample.MapErr(lk, func(x float64) (float64, error) {
			k := uvb.K(sc.Xi(dk, x) + sc.Mu())
			omega, err := topo.Omega(k, quantum.Conduction, quantum.K, quantum.Up)
			s := sin2(dk, x)
			return s * s * s * omega, err
		})
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", d, err)
		}

		fig.Series = append(fig.Series, Series{
			Label: d.Material().Name(),
			X:     lk,
			Y:     ys,
			Style: StyleAuto,
		})
	}

	return fig, nil
}

// TransitionWeight is the coherence factor of helicity v at detuning xi:
// above μ right-handed light couples through cos²β and left-handed through
// sin²β, below μ the roles swap. At xi = 0 it is 0.
func TransitionWeight(v quantum.Helicity, xi, cos2, sin2 float64) float64 {
	switch {
	case xi > 0 && v == quantum.Right, xi < 0 && v == quantum.Left:
		return cos2
	case xi > 0 && v == quantum.Left, xi < 0 && v == quantum.Right:
		return sin2
	default:
		return 0
	}
}

// Transitions draws the coherence-weighted |P_v|² of both helicities across
// the detuning range of the upper valence band of d.
func Transitions(d *dichalcogenide.Dichalcogenide, n int) (Figure, error) {
	sc, err := superconductor.NewInduced(d)
	if err != nil {
		return Figure{}, err
	}
	optical, err := dichalcogenide.NewOptical(d)
	if err != nil {
		return Figure{}, err
	}
	lo, hi := dichalcogenide.NewEnergy(d).XiBounds()
	xs, err := sample.Linspace(lo, hi, n)
	if err != nil {
		return Figure{}, fmt.Errorf("%s: %w", d, err)
	}

	fig := Figure{
		Name:   "optical",
		Title:  d.Material().Name(),
		XLabel: "ξ (eV)",
		YLabel: "|c P|² (GeV²)",
		Legend: true,
	}
	cos2 := superconductor.MustTrig(superconductor.Cos2Beta)
	sin2 := superconductor.MustTrig(superconductor.Sin2Beta)
	dk := sc.DeltaK(0)

	for _, v := range []quantum.Helicity{quantum.Right, quantum.Left} {
		ys, err := sample.MapErr(xs, func(xi float64) (float64, error) {
			lk := sc.LambdaK(dk, -math.Abs(xi))
			p, err := optical.PCircular(xi+sc.Mu(), quantum.Conduction, v)
			return TransitionWeight(v, xi, cos2(dk, lk), sin2(dk, lk)) * p, err
		})
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", d, err)
		}
		fig.Series = append(fig.Series, Series{
			Label: helicityLabel(v),
			X:     xs,
			Y:     ys,
			Style: StyleAuto,
		})
	}

	return fig, nil
}

func helicityLabel(v quantum.Helicity) string {
	if v == quantum.Right {
		return "v = +"
	}

	return "v = −"
}
