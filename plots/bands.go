package plots

import (
	"fmt"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/quantum"
	"github.com/katalvlaran/dichalcogenides/sample"
)

// BandsOptions sets the geometry of the band-structure figure. Momenta are
// in 1/Å, offsets in plot units.
type BandsOptions struct {
	DK float64 // half-width of each valley window
	K0 float64 // valley separation from the origin
	T  float64 // text offset
	N  int     // points per branch
}

// DefaultBandsOptions returns dk = 0.4, k0 = 0.5, t = 0.06, n = 100.
func DefaultBandsOptions() BandsOptions {
	return BandsOptions{DK: 0.4, K0: 0.5, T: 0.06, N: 100}
}

// Bands draws all eight (n, τ, s) branches of d around the −K and K valleys,
// with the chemical potential, the gap and spin-splitting bars, and spin
// arrows at the branch ends.
func Bands(d *dichalcogenide.Dichalcogenide, o BandsOptions) (Figure, error) {
	energy := dichalcogenide.NewEnergy(d)
	fig := Figure{
		Name:     "energy-bands",
		Title:    "E(k)",
		HideAxes: true,
		Lines: []Line{
			{Value: 0, Style: StyleThin},
			{Value: 0, Vertical: true, Style: StyleThin},
			{Value: energy.Mu(), Style: StyleDashed},
		},
	}

	for _, l := range quantum.AllLabels() {
		b, err := energy.Branch(l.N, l.Tau, l.S)
		if err != nil {
			return Figure{}, err
		}
		tau := float64(l.Tau)
		ks, err := sample.Linspace(tau*(o.K0-o.DK), tau*(o.K0+o.DK), o.N)
		if err != nil {
			return Figure{}, fmt.Errorf("bands %v: %w", l, err)
		}
		fig.Series = append(fig.Series, Series{
			Label: l.String(),
			X:     ks,
			Y:     sample.Map(ks, func(k float64) float64 { return b.E(k - tau*o.K0) }),
			Style: StyleBlack,
		})
		fig.Labels = append(fig.Labels, Label{
			X:    tau * (o.K0 + o.DK + o.T),
			Y:    b.E(o.DK),
			Text: spinArrow(l.S),
		})
	}

	// Gap and spin-splitting bars at the −K valley center.
	edge := func(n quantum.Band, s quantum.Spin) float64 {
		e, _ := energy.E(0, n, quantum.K, s)
		return e
	}
	vbUp, cbUp, vbDown := edge(quantum.Valence, quantum.Up), edge(quantum.Conduction, quantum.Up), edge(quantum.Valence, quantum.Down)
	bar := []float64{-o.K0, -o.K0}
	fig.Series = append(fig.Series,
		Series{X: bar, Y: []float64{vbUp, cbUp}, Style: StyleThin},
		Series{X: bar, Y: []float64{vbUp, vbDown}, Style: StyleThin},
	)

	fig.Labels = append(fig.Labels,
		Label{X: -o.K0 + 0.5*o.T, Y: o.T, Text: "Δ"},
		Label{X: -o.K0 + 0.5*o.T, Y: 0.5*(vbUp+vbDown) - 3.5*o.T, Text: "2λ"},
		Label{X: -(o.K0 + o.DK), Y: energy.Mu() + o.T, Text: "μ"},
		Label{X: -o.K0, Y: -o.T, Text: "−K"},
		Label{X: o.K0, Y: -o.T, Text: "K"},
		Label{X: o.T, Y: o.T, Text: "n = +"},
		Label{X: o.T, Y: -2 * o.T, Text: "n = −"},
	)

	return fig, nil
}

func spinArrow(s quantum.Spin) string {
	if s == quantum.Up {
		return "↑"
	}

	return "↓"
}
