// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a working Dense A and set Q = I.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and rotate
//     it to zero, accumulating the rotation into Q.
//   - Stage 3: Fail with ErrEigenFailed if max off-diagonal ≥ tol after maxIter.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (not sorted).
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Determinism:
//   - Fixed pivot scan and update order; identical inputs give identical outputs.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		p, r           int
		maxOff         float64
		app, arr, apr  float64
		theta, t, c, s float64
	)
	for iter := 0; iter < maxIter; iter++ {
		p, r, maxOff = pivot(a)
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]

		// t = sign(θ) / (|θ| + √(θ²+1)), θ = (a_rr − a_pp) / (2 a_pr)
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := a.data[i*n+p]
			air := a.data[i*n+r]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
			a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qir := q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if _, _, maxOff = pivot(a); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}

// EigenValues returns the eigenvalues of a symmetric matrix in ascending order.
func EigenValues(m Matrix, tol float64, maxIter int) ([]float64, error) {
	vals, _, err := Eigen(m, tol, maxIter)
	if err != nil {
		return nil, err
	}
	slices.Sort(vals)

	return vals, nil
}

// pivot returns the upper-triangle position with the largest magnitude.
func pivot(a *Dense) (p, q int, maxOff float64) {
	n := a.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[i*n+j]); off > maxOff {
				p, q, maxOff = i, j, off
			}
		}
	}

	return p, q, maxOff
}

// toDense copies any Matrix into a fresh *Dense.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
