package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dichalcogenides/config"
	"github.com/katalvlaran/dichalcogenides/plots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := config.FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, []string{"svg", "pdf"}, c.Formats)
	assert.Equal(t, 100, c.Points)
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := config.FromEnv(env(map[string]string{
		config.EnvData:    "/srv/tmd",
		config.EnvBuild:   "out",
		config.EnvFormats: "PNG, eps",
		config.EnvPoints:  " 250 ",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/srv/tmd", c.DataRoot)
	assert.Equal(t, "out", c.BuildDir)
	assert.Equal(t, []string{"png", "eps"}, c.Formats)
	assert.Equal(t, 250, c.Points)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"points not a number": {config.EnvPoints: "many"},
		"too few points":      {config.EnvPoints: "1"},
		"unknown format":      {config.EnvFormats: "svg,gif"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromEnv(env(vars))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.FromEnv(env(map[string]string{config.EnvFormats: "bmp"}))
	assert.ErrorIs(t, err, plots.ErrUnsupportedFormat)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PLOT_POINTS=42\nBUILD_DIR=figs\n"), 0o600))

	t.Setenv(config.EnvPoints, "")
	t.Setenv(config.EnvBuild, "explicit")
	require.NoError(t, os.Unsetenv(config.EnvPoints))

	c, err := config.Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 42, c.Points)
	assert.Equal(t, "explicit", c.BuildDir, "process environment wins over .env")
}
