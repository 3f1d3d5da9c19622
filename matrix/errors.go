// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Return sentinels directly or wrap them with an operation tag via
// matrixErrorf; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals |A[i,j] - A[j,i]| > tol for some i≠j.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrNaNInf signals a NaN or ±Inf value where a finite one is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that Jacobi sweeps did not converge within maxIter.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags used by matrixErrorf.
const (
	opEigen    = "Eigen"
	opValidate = "Validate"
)

// matrixErrorf wraps a non-nil err as "<tag>: <err>", preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
