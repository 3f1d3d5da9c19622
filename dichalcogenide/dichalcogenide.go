package dichalcogenide

import (
	"github.com/katalvlaran/dichalcogenides/material"
)

// Dichalcogenide binds a material parameter set to the model.
type Dichalcogenide struct {
	material *material.Material
	params   material.Parameters
}

// New resolves name/system through store. A nil store uses the
// process-wide store for material.DefaultRoot.
func New(store *material.Store, name, system string) (*Dichalcogenide, error) {
	var (
		m   *material.Material
		err error
	)
	if store == nil {
		m, err = material.Lookup(name, system, "")
	} else {
		m, err = store.Lookup(name, system)
	}
	if err != nil {
		return nil, err
	}

	return FromMaterial(m), nil
}

// FromMaterial wraps an already resolved material.
func FromMaterial(m *material.Material) *Dichalcogenide {
	return &Dichalcogenide{material: m, params: m.Params()}
}

// Material returns the underlying material.
func (d *Dichalcogenide) Material() *material.Material { return d.material }

// Params returns a copy of the model constants.
func (d *Dichalcogenide) Params() material.Parameters { return d.material.Params() }

func (d *Dichalcogenide) String() string { return d.material.String() }
