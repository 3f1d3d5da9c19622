// SPDX-License-Identifier: MIT

package matrix

import "math"

// ValidateSquare fails with ErrNilMatrix or ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return matrixErrorf(opValidate, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf(opValidate, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |A[i,j]-A[j,i]| ≤ tol for
// every pair in the strict upper triangle. A non-finite tol is ErrNaNInf;
// a negative tol is taken by absolute value.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf(opValidate, ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opValidate, err)
			}
			aji, err := m.At(j, i)
			if err != nil {
				return matrixErrorf(opValidate, err)
			}
			if math.Abs(aij-aji) > tol {
				return matrixErrorf(opValidate, ErrAsymmetry)
			}
		}
	}

	return nil
}
