// Package superconductor implements the proximity-induced pairing transform
// on the hole-doped upper valence band.
//
// For a local gap scale Δk and pairing amplitude λk the quasiparticle energy
// is E = √(Δk² + λk²) and the Bogoliubov mixing angle β satisfies
//
//	cos²β = ½ (1 + Δk/E)     sin²β = ½ (1 − Δk/E)
//
// The pairing amplitude maps back to a normal-state detuning below μ through
// ξ(Δk, λk) = Δk − E, and LambdaKBounds picks the λk range whose detunings
// stay inside the band's sampling window.
//
// At Δk = λk = 0 the ratio Δk/E is 0/0; Trig functions return NaN there and
// never panic, so sampled curves simply skip that point.
package superconductor
