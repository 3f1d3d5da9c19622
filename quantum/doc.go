// Package quantum defines the discrete labels that parameterize every band,
// curvature and optical evaluation: valley τ, band n, spin s and photon
// helicity v. Each takes values in {−1, +1} only.
//
// Labels are plain integer types so call sites read like the physics:
//
//	quantum.Labels{N: quantum.Valence, Tau: quantum.K, S: quantum.Up}
//
// Because a typed integer can still hold 0 or 7, every model entry point
// validates its labels with Check and fails with ErrInvalidQuantumNumber.
package quantum
