// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/katalvlaran/dichalcogenides/plots"
)

// Environment variable names.
const (
	EnvData    = "DATA"
	EnvBuild   = "BUILD_DIR"
	EnvFormats = "PLOT_FORMATS"
	EnvPoints  = "PLOT_POINTS"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings shared by every command.
type Config struct {
	DataRoot string
	BuildDir string
	Formats  []string
	Points   int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DataRoot: material.DefaultRoot,
		BuildDir: plots.DefaultDir,
		Formats:  plots.DefaultFormats(),
		Points:   plots.DefaultPoints,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// resolves a Config from the environment. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv resolves a Config through lookup, falling back to Default for
// unset or empty variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvData); ok {
		c.DataRoot = v
	}
	if v, ok := get(EnvBuild); ok {
		c.BuildDir = v
	}
	if v, ok := get(EnvFormats); ok {
		c.Formats = strings.Split(v, ",")
	}
	if v, ok := get(EnvPoints); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvPoints, v, ErrInvalidConfig)
		}
		c.Points = n
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate normalizes Formats in place and checks every field.
func (c *Config) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("points=%d, need at least 2: %w", c.Points, ErrInvalidConfig)
	}
	if c.DataRoot == "" || c.BuildDir == "" {
		return fmt.Errorf("empty directory: %w", ErrInvalidConfig)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("no export format: %w", ErrInvalidConfig)
	}
	for i, f := range c.Formats {
		norm, err := plots.CheckFormat(f)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Formats[i] = norm
	}

	return nil
}
