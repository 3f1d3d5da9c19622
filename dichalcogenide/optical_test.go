package dichalcogenide_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/katalvlaran/dichalcogenides/quantum"
	"github.com/katalvlaran/dichalcogenides/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptical_MoS2Scenario samples ξ over 50 points across XiBounds and
// expects two finite, non-negative helicity channels.
func TestOptical_MoS2Scenario(t *testing.T) {
	d := mustModel(t, material.MoS2, "")
	energy := dichalcogenide.NewEnergy(d)
	optical, err := dichalcogenide.NewOptical(d)
	require.NoError(t, err)

	lo, hi := energy.XiBounds()
	xi, err := sample.Linspace(lo, hi, 50)
	require.NoError(t, err)

	for _, v := range quantum.Helicities() {
		ps, err := sample.MapErr(xi, func(x float64) (float64, error) {
			return optical.PCircular(x+energy.Mu(), quantum.Conduction, v)
		})
		require.NoError(t, err)
		require.Len(t, ps, 50)
		assert.Equal(t, 50, sample.Finite(ps), "v=%d", v)
		for _, p := range ps {
			assert.GreaterOrEqual(t, p, 0.0)
		}
	}
}

// TestOptical_DichroismBounded checks −1 ≤ (P₊²−P₋²)/(P₊²+P₋²) ≤ 1 wherever defined.
func TestOptical_DichroismBounded(t *testing.T) {
	forEachMaterial(t, material.SystemInduced, func(t *testing.T, d *dichalcogenide.Dichalcogenide) {
		energy := dichalcogenide.NewEnergy(d)
		lo, hi := energy.XiBounds()
		xi, err := sample.Linspace(lo, hi, 100)
		require.NoError(t, err)

		for _, tau := range []quantum.Valley{quantum.KPrime, quantum.K} {
			optical, err := dichalcogenide.NewOptical(d, dichalcogenide.WithValley(tau))
			require.NoError(t, err)
			for _, n := range []quantum.Band{quantum.Valence, quantum.Conduction} {
				for _, x := range xi {
					r, err := optical.Dichroism(x+energy.Mu(), n)
					require.NoError(t, err)
					if math.IsNaN(r) {
						continue
					}
					assert.GreaterOrEqual(t, r, -1.0)
					assert.LessOrEqual(t, r, 1.0)
				}
			}
		}
	})
}

// TestOptical_BandEdgeSelection checks full valley selectivity at the upper
// valence band edge: σ+ at +K, σ− at −K.
func TestOptical_BandEdgeSelection(t *testing.T) {
	d := mustModel(t, material.WSe2, "")
	top := dichalcogenide.NewUpperValenceBand(d).Top()

	k, err := dichalcogenide.NewOptical(d)
	require.NoError(t, err)
	kp, err := dichalcogenide.NewOptical(d, dichalcogenide.WithValley(quantum.KPrime))
	require.NoError(t, err)

	p0 := k.P0Squared()
	plus, _ := k.PCircular(top, quantum.Valence, quantum.Right)
	minus, _ := k.PCircular(top, quantum.Valence, quantum.Left)
	assert.InEpsilon(t, 4*p0, plus, 1e-12)
	assert.InDelta(t, 0, minus, 1e-24)

	plus, _ = kp.PCircular(top, quantum.Valence, quantum.Right)
	minus, _ = kp.PCircular(top, quantum.Valence, quantum.Left)
	assert.InDelta(t, 0, plus, 1e-24)
	assert.InEpsilon(t, 4*p0, minus, 1e-12)

	r, err := k.Dichroism(top, quantum.Valence)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestOptical_P0Squared(t *testing.T) {
	d := mustModel(t, material.MoS2, "")
	o, err := dichalcogenide.NewOptical(d)
	require.NoError(t, err)

	at := d.Params().At()
	want := math.Pow(dichalcogenide.ElectronRestEnergy*at/dichalcogenide.HbarC, 2)
	assert.InEpsilon(t, want, o.P0Squared(), 1e-12)
	assert.Equal(t, quantum.K, o.Valley())
}

func TestOptical_SingularAndInvalid(t *testing.T) {
	d := mustModel(t, material.MoS2, "")
	o, err := dichalcogenide.NewOptical(d)
	require.NoError(t, err)

	p, err := o.PCircular(d.Params().SpinOrbit/2, quantum.Conduction, quantum.Right)
	require.NoError(t, err, "singular energy is not an error")
	assert.True(t, math.IsInf(p, 1))

	r, err := o.Dichroism(d.Params().SpinOrbit/2, quantum.Conduction)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r))

	_, err = o.PCircular(0, quantum.Conduction, 0)
	assert.ErrorIs(t, err, quantum.ErrInvalidQuantumNumber)
	_, err = o.PCircular(0, 2, quantum.Left)
	assert.ErrorIs(t, err, quantum.ErrInvalidQuantumNumber)
	_, err = dichalcogenide.NewOptical(d, dichalcogenide.WithValley(0))
	assert.ErrorIs(t, err, quantum.ErrInvalidQuantumNumber)

	assert.True(t, math.IsNaN(dichalcogenide.DichroismRatio(0, 0)))
}
