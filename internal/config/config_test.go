package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/minard/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MINARD_CONFIG", "")
	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ggplot2-minard-gallery", c.DataDir)
	assert.Equal(t, 300, c.DPI)
	assert.Equal(t, "napoleon_march.svg", c.RouteFile)
	assert.Equal(t, "temperature_plot.svg", c.TempFile)
	assert.True(t, c.Show)
	assert.False(t, c.Trend)
	require.NoError(t, c.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MINARD_CONFIG", "")
	t.Setenv("MINARD_DPI", "150")
	t.Setenv("MINARD_TREND", "true")
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 150, c.DPI)
	assert.True(t, c.Trend)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir = "/srv/minard"
out_dir = "/tmp/out"
show = false
`), 0o644))
	t.Setenv("MINARD_CONFIG", path)

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/minard", c.DataDir)
	assert.False(t, c.Show)
	assert.Equal(t, filepath.Join("/tmp/out", "minard.png"), c.Out(c.FigureFile))
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("MINARD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := config.Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("MINARD_CONFIG", "")
	c, err := config.Load()
	require.NoError(t, err)

	bad := c
	bad.DPI = 0
	assert.Error(t, bad.Validate())

	bad = c
	bad.RouteFile = ""
	assert.ErrorContains(t, bad.Validate(), "route_file")
}
