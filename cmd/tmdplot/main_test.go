package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dichalcogenides/material"
)

func TestRootCmd_All(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"all", "--out", dir, "--format", "svg", "--points", "20"})
	require.NoError(t, rootCmd.Execute())

	for _, name := range []string{"energy-bands", "optical-transitions", "topology", "optical"} {
		_, err := os.Stat(filepath.Join(dir, name+".svg"))
		assert.NoError(t, err, name)
	}
	assert.Equal(t, 20, app.cfg.Points)
}

func TestRootCmd_Errors(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"bands", "graphene", "--out", dir})
	assert.ErrorIs(t, rootCmd.Execute(), material.ErrUnknownMaterial)

	rootCmd.SetArgs([]string{"topology", "--out", dir, "--format", "gif"})
	assert.Error(t, rootCmd.Execute())
}
