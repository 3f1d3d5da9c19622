// Package material is the parameter table for the supported monolayer
// transition-metal dichalcogenides (MoS₂, MoSe₂, WS₂, WSe₂).
//
// Parameters are read from YAML files under a data root:
//
//	<root>/<name>.yaml            base two-band constants (a, t, Δ, λ, k_c)
//	<root>/<system>/<name>.yaml   optional variant overlay (e.g. "induced")
//
// An overlay only overrides the fields it sets. When the root does not hold
// a requested file the embedded builtin table, which has the same layout,
// is used instead.
//
// A Store caches every (name, system) pair for its lifetime; concurrent
// lookups of the same key load it at most once. Materials are immutable
// and safe to share between goroutines.
//
//	s := material.NewStore(material.WithRoot("data"))
//	m, err := s.Lookup("WSe2", "induced")
//	if errors.Is(err, material.ErrUnknownMaterial) { ... }
package material
