// Package dichalcogenides evaluates the low-energy physics of monolayer
// transition-metal dichalcogenides (MoS₂, MoSe₂, WS₂, WSe₂) in the
// massive-Dirac model, with and without superconducting pairing induced by
// proximity.
//
// 🚀 What is inside?
//
//	• Material table: lattice constant, hopping, gap, spin–orbit splitting,
//	  cutoff and pairing parameters, from YAML with an embedded fallback
//	• Band energy: E(k) and its inverse k(E) for every (n, τ, s) branch
//	• Upper valence band: edges, chemical potential, detuning bounds
//	• Induced pairing: Δk, the coherence factors cos²β and sin²β, ξ ↔ λk
//	• Optics: circular matrix elements |P±|² and the dichroism ratio
//	• Topology: Berry curvature Ω(k) of each branch
//	• Figures: sampling helpers and gonum/plot rendering, plus the tmdplot CLI
//
// Layout:
//
//	quantum/        — band, valley, spin and helicity labels
//	material/       — parameter schema, builtin data, cached Store
//	matrix/         — small dense matrices and a Jacobi eigen solver
//	dichalcogenide/ — Energy, UpperValenceBand, Optical, Topology
//	superconductor/ — Induced pairing transform and Trig expressions
//	sample/         — grids and pointwise evaluation
//	plots/          — Figure descriptions, builders and the Renderer
//	config/         — environment and .env settings
//	cmd/tmdplot/    — command-line entry point
//
// Every evaluator is a pure function of its inputs: numeric singularities
// come back as NaN or ±Inf, invalid quantum labels and unknown materials as
// errors matched with errors.Is.
//
// Quick start:
//
//	d, _ := dichalcogenide.New(nil, "wse2", "induced")
//	e := dichalcogenide.NewEnergy(d)
//	lo, hi := e.XiBounds()
package dichalcogenides
