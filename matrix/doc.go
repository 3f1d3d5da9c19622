// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra kernel used to cross-check
// the closed-form band model against direct diagonalization.
//
// What is here?
//
//	• Dense    — row-major float64 storage with bounds-checked At/Set
//	• Validators — shape and symmetry checks returning package sentinels
//	• Eigen    — Jacobi rotation eigen-solver for real symmetric matrices
//
// The dispersion E(k, n, τ, s) of the massive-Dirac model is the spectrum of
// a 2×2 Bloch Hamiltonian; along k_x that Hamiltonian is real symmetric, so
// Eigen reproduces both bands without complex arithmetic:
//
//	h, _ := matrix.NewDense(2, 2)
//	_ = h.Set(0, 0, gap/2)
//	_ = h.Set(0, 1, at*tau*k)
//	_ = h.Set(1, 0, at*tau*k)
//	_ = h.Set(1, 1, -gap/2+lambda*tau*s)
//	vals, _, err := matrix.Eigen(h, 1e-12, 64)
//
// All public entry points return sentinel errors (match with errors.Is) and
// never panic on user input.
package matrix
