package superconductor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/katalvlaran/dichalcogenides/sample"
	"github.com/katalvlaran/dichalcogenides/superconductor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var store = material.NewStore()

func mustInduced(t *testing.T, name string) (*superconductor.Induced, *dichalcogenide.Dichalcogenide) {
	t.Helper()
	d, err := dichalcogenide.New(store, name, material.SystemInduced)
	require.NoError(t, err)
	sc, err := superconductor.NewInduced(d)
	require.NoError(t, err)

	return sc, d
}

// TestTrig_Complementary checks cos²β + sin²β = 1 away from the origin.
func TestTrig_Complementary(t *testing.T) {
	cos2 := superconductor.MustTrig(superconductor.Cos2Beta)
	sin2 := superconductor.MustTrig(superconductor.Sin2Beta)

	values := []float64{-0.3, -1e-4, 0, 2e-3, 0.01, 0.7}
	for _, dk := range values {
		for _, lk := range values {
			if dk == 0 && lk == 0 {
				continue
			}
			c, s := cos2(dk, lk), sin2(dk, lk)
			assert.InDelta(t, 1.0, c+s, 1e-12, "dk=%g lk=%g", dk, lk)
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestTrig_Origin(t *testing.T) {
	for _, expr := range []string{
		superconductor.Cos2Beta, superconductor.Sin2Beta,
		superconductor.CosDoubleBeta, superconductor.SinDoubleBeta,
	} {
		f, err := superconductor.Trig(expr)
		require.NoError(t, err)
		assert.NotPanics(t, func() { f(0, 0) })
		assert.True(t, math.IsNaN(f(0, 0)), expr)
	}
}

func TestTrig_DoubleAngle(t *testing.T) {
	cos2 := superconductor.MustTrig("cos^2 beta")
	sin2 := superconductor.MustTrig("sin^2 β")
	cosD := superconductor.MustTrig("cos 2 beta")
	sinD := superconductor.MustTrig("sin 2β")

	dk, lk := 0.01, 0.03
	assert.InDelta(t, cos2(dk, lk)-sin2(dk, lk), cosD(dk, lk), 1e-15)
	assert.InDelta(t, 1.0, cosD(dk, lk)*cosD(dk, lk)+sinD(dk, lk)*sinD(dk, lk), 1e-12)
	assert.InDelta(t, 4*cos2(dk, lk)*sin2(dk, lk), sinD(dk, lk)*sinD(dk, lk), 1e-12)
}

func TestTrig_Unknown(t *testing.T) {
	_, err := superconductor.Trig("tan β")
	assert.ErrorIs(t, err, superconductor.ErrUnknownExpression)
	assert.Panics(t, func() { superconductor.MustTrig("cos^3 β") })
}

// TestInduced_WSe2Scenario samples λk over LambdaKBounds(Δk(0)) and checks
// sin²β ∈ [0, 1] at every point.
func TestInduced_WSe2Scenario(t *testing.T) {
	sc, _ := mustInduced(t, material.WSe2)
	sin2, err := sc.Trig("sin^2 β")
	require.NoError(t, err)

	dk := sc.DeltaK(0)
	require.Greater(t, dk, 0.0)
	lk, err := sample.Linspace(first(sc.LambdaKBounds(dk)), second(sc.LambdaKBounds(dk)), 100)
	require.NoError(t, err)

	ys := sample.Map(lk, func(l float64) float64 { return sin2(dk, l) })
	require.Equal(t, 100, sample.Finite(ys))
	for _, y := range ys {
		assert.GreaterOrEqual(t, y, 0.0)
		assert.LessOrEqual(t, y, 1.0)
	}
	assert.Equal(t, 0.0, ys[0], "λk = 0 has no hole admixture")
}

// TestInduced_SingleSingularPoint uses Δk = 0 so the grid's first point is
// the origin; it must be the only NaN.
func TestInduced_SingleSingularPoint(t *testing.T) {
	sc, _ := mustInduced(t, material.WSe2)
	sin2 := superconductor.MustTrig(superconductor.Sin2Beta)

	lo, hi := sc.LambdaKBounds(0)
	lk, err := sample.Linspace(lo, hi, 100)
	require.NoError(t, err)

	ys := sample.Map(lk, func(l float64) float64 { return sin2(0, l) })
	assert.True(t, math.IsNaN(ys[0]))
	assert.Equal(t, 99, sample.Finite(ys))
	for _, y := range ys[1:] {
		assert.InDelta(t, 0.5, y, 1e-15)
	}
}

// TestInduced_XiWithinBounds checks the detuning map stays inside XiBounds
// and that LambdaK inverts Xi.
func TestInduced_XiWithinBounds(t *testing.T) {
	for _, key := range material.Supported() {
		t.Run(key, func(t *testing.T) {
			sc, d := mustInduced(t, key)
			xlo, xhi := dichalcogenide.NewEnergy(d).XiBounds()

			dk := sc.DeltaK(0)
			lo, hi := sc.LambdaKBounds(dk)
			assert.Equal(t, 0.0, lo)
			assert.InDelta(t, xlo, sc.Xi(dk, hi), 1e-12)

			lk, err := sample.Linspace(lo, hi, 100)
			require.NoError(t, err)
			for _, l := range lk {
				xi := sc.Xi(dk, l)
				assert.GreaterOrEqual(t, xi, xlo-1e-12)
				assert.LessOrEqual(t, xi, xhi)
				assert.InDelta(t, l, sc.LambdaK(dk, xi), 1e-9)
			}
		})
	}
}

func TestInduced_DeltaK(t *testing.T) {
	sc, d := mustInduced(t, material.MoS2)
	assert.Equal(t, d.Params().PairingGap, sc.DeltaK(0))
	assert.Equal(t, sc.Delta0(), sc.DeltaK(0.2), "zero width is constant")

	p := d.Params()
	p.PairingWidth = 0.1
	m, err := material.New("mos2", "MoS₂", "custom", p)
	require.NoError(t, err)
	g, err := superconductor.NewInduced(dichalcogenide.FromMaterial(m))
	require.NoError(t, err)

	assert.Equal(t, p.PairingGap, g.DeltaK(0))
	assert.InEpsilon(t, p.PairingGap*math.Exp(-0.5), g.DeltaK(0.1), 1e-12)
	assert.Equal(t, g.DeltaK(0.05), g.DeltaK(-0.05))
}

func TestInduced_Errors(t *testing.T) {
	d, err := dichalcogenide.New(store, material.MoS2, "")
	require.NoError(t, err)
	_, err = superconductor.NewInduced(d)
	assert.ErrorIs(t, err, superconductor.ErrMissingPairing)

	sc, _ := mustInduced(t, material.MoS2)
	assert.True(t, math.IsNaN(sc.LambdaK(0.01, 0.2)), "positive detuning has no pairing branch")
}

// TestInduced_OpticalDichroism reproduces the optical figure's curve: the
// cos²β weight cancels in the ratio, leaving a bounded dichroism.
func TestInduced_OpticalDichroism(t *testing.T) {
	sc, d := mustInduced(t, material.WSe2)
	optical, err := dichalcogenide.NewOptical(d)
	require.NoError(t, err)
	cos2 := superconductor.MustTrig(superconductor.Cos2Beta)

	dk := sc.DeltaK(0)
	_, hi := sc.LambdaKBounds(dk)
	lk, err := sample.Linspace(0, hi, 100)
	require.NoError(t, err)

	for _, l := range lk {
		e := sc.Xi(dk, l) + sc.Mu()
		plus, err := optical.PCircular(e, 1, 1)
		require.NoError(t, err)
		minus, err := optical.PCircular(e, 1, -1)
		require.NoError(t, err)

		w := cos2(dk, l)
		r := dichalcogenide.DichroismRatio(w*plus, w*minus)
		require.False(t, math.IsNaN(r))
		assert.GreaterOrEqual(t, r, -1.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}

func first(a, _ float64) float64  { return a }
func second(_, b float64) float64 { return b }
