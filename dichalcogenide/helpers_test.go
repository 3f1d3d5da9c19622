package dichalcogenide_test

import (
	"testing"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/stretchr/testify/require"
)

var store = material.NewStore()

// mustModel resolves name/system or fails the test.
func mustModel(t *testing.T, name, system string) *dichalcogenide.Dichalcogenide {
	t.Helper()
	d, err := dichalcogenide.New(store, name, system)
	require.NoError(t, err)

	return d
}

// forEachMaterial runs fn as a subtest for every supported material.
func forEachMaterial(t *testing.T, system string, fn func(t *testing.T, d *dichalcogenide.Dichalcogenide)) {
	for _, key := range material.Supported() {
		t.Run(key, func(t *testing.T) { fn(t, mustModel(t, key, system)) })
	}
}
