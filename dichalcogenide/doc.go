// Package dichalcogenide evaluates the two-band massive-Dirac model of a
// monolayer transition-metal dichalcogenide near the ±K valleys:
//
//	H = a t (τ k_x σ_x + k_y σ_y) + Δ/2 σ_z − λ τ s (σ_z − 1)/2
//
// 🚀 What is here?
//
//	• Energy           — dispersion E(k, n, τ, s), its inverse K(E, n, τ, s),
//	                     chemical potential μ and detuning bounds
//	• UpperValenceBand — the spin–valley locked top valence band (n=−1, τs=+1)
//	• Optical          — circular-polarization interband matrix elements |P±|²
//	• Topology         — Berry curvature Ω(k, n, τ, s)
//
// Argument order follows the band figure: momentum first, then band n,
// valley τ and spin s. With Δ' = Δ − τsλ:
//
//	E(k)  = ½ (τ s λ + n √((2 a t k)² + Δ'²))
//	Ω(k)  = −n τ 2 (a t)² Δ' / (Δ'² + (2 a t k)²)^{3/2}
//	|P±|² = P0² (1 ± τ cos θ)²,  cos θ = Δ' / √(Δ'² + (2 a t k)²)
//
// Every function is pure. Labels are validated once (Branch) or per call
// (E, K, Omega, PCircular) and fail with quantum.ErrInvalidQuantumNumber.
// Singular points are never errors: they come back as NaN or ±Inf so that
// sampled curves simply show a gap there.
package dichalcogenide
