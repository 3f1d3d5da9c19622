package sample

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrBadGrid indicates a non-positive point count or non-finite bounds.
var ErrBadGrid = errors.New("sample: grid needs n >= 1 and finite bounds")

// Linspace returns n evenly spaced points from lo to hi inclusive.
// n == 1 yields [lo].
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("Linspace(%g, %g, %d): %w", lo, hi, n, ErrBadGrid)
	}
	if n == 1 {
		return []float64{lo}, nil
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}

// Map evaluates f at every x.
func Map(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

// MapErr evaluates f at every x and stops at the first error.
func MapErr(xs []float64, f func(float64) (float64, error)) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d (x=%g): %w", i, x, err)
		}
		ys[i] = y
	}

	return ys, nil
}

// Scale returns xs multiplied by c, leaving xs untouched.
func Scale(xs []float64, c float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.Scale(c, out)

	return out
}

// IsFinite reports whether y is neither NaN nor ±Inf.
func IsFinite(y float64) bool { return !math.IsNaN(y) && !math.IsInf(y, 0) }

// Finite counts the finite values of ys.
func Finite(ys []float64) int {
	n := 0
	for _, y := range ys {
		if IsFinite(y) {
			n++
		}
	}

	return n
}

// Bounds returns the min and max over finite values; ok is false if none.
// Unlike floats.Min and floats.Max, NaN and ±Inf samples are skipped.
func Bounds(ys []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if !IsFinite(y) {
			continue
		}
		lo, hi, ok = math.Min(lo, y), math.Max(hi, y), true
	}

	return lo, hi, ok
}

// Point is one sampled (x, y) pair.
type Point struct{ X, Y float64 }

// Segments splits (xs, ys) at non-finite samples into maximal finite runs.
// xs and ys must have equal length; the shorter length is used otherwise.
func Segments(xs, ys []float64) [][]Point {
	n := min(len(xs), len(ys))
	var (
		out [][]Point
		cur []Point
	)
	for i := 0; i < n; i++ {
		if IsFinite(xs[i]) && IsFinite(ys[i]) {
			cur = append(cur, Point{X: xs[i], Y: ys[i]})
			continue
		}
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}
