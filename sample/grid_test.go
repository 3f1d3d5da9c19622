package sample_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/dichalcogenides/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	xs, err := sample.Linspace(-1, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, xs)

	xs, err = sample.Linspace(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, xs)

	for _, tc := range []struct {
		lo, hi float64
		n      int
	}{
		{0, 1, 0},
		{math.NaN(), 1, 10},
		{0, math.Inf(1), 10},
	} {
		_, err := sample.Linspace(tc.lo, tc.hi, tc.n)
		assert.ErrorIs(t, err, sample.ErrBadGrid)
	}
}

func TestMap(t *testing.T) {
	ys := sample.Map([]float64{1, 4, 9}, math.Sqrt)
	assert.Equal(t, []float64{1, 2, 3}, ys)

	boom := errors.New("boom")
	_, err := sample.MapErr([]float64{1, 2}, func(x float64) (float64, error) {
		if x > 1 {
			return 0, boom
		}
		return x, nil
	})
	assert.ErrorIs(t, err, boom)

	xs := []float64{1, 2}
	assert.Equal(t, []float64{3, 6}, sample.Scale(xs, 3))
	assert.Equal(t, []float64{1, 2}, xs)
}

func TestFiniteAndBounds(t *testing.T) {
	ys := []float64{math.NaN(), 2, math.Inf(-1), -3, 5}
	assert.Equal(t, 3, sample.Finite(ys))

	lo, hi, ok := sample.Bounds(ys)
	require.True(t, ok)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 5.0, hi)

	_, _, ok = sample.Bounds([]float64{math.NaN()})
	assert.False(t, ok)
}

func TestSegments(t *testing.T) {
	nan := math.NaN()
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{nan, 1, 2, nan, 4, 5}

	segs := sample.Segments(xs, ys)
	require.Len(t, segs, 2)
	assert.Equal(t, []sample.Point{{1, 1}, {2, 2}}, segs[0])
	assert.Equal(t, []sample.Point{{4, 4}, {5, 5}}, segs[1])

	assert.Empty(t, sample.Segments(xs, []float64{nan, nan}))
}
