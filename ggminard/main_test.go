package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/minard/internal/config"
)

func TestRun(t *testing.T) {
	out := t.TempDir()
	cfg := config.Config{
		DataDir:   "../ggplot2-minard-gallery",
		OutDir:    out,
		DPI:       50,
		RouteFile: "napoleon_march.svg",
		TempFile:  "temperature_plot.svg",
	}
	require.NoError(t, run(cfg))

	for _, name := range []string{"napoleon_march.svg", "temperature_plot.svg"} {
		b, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(b), "<svg", name)
	}
}

func TestRunMissingData(t *testing.T) {
	cfg := config.Config{DataDir: t.TempDir(), OutDir: t.TempDir(), DPI: 50}
	require.Error(t, run(cfg))
}
