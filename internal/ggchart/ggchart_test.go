package ggchart_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/ggchart"
)

func load(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := campaign.Load("../../ggplot2-minard-gallery")
	require.NoError(t, err)
	return c
}

func TestPixels(t *testing.T) {
	w, h := ggchart.RouteSize.Pixels(300)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 840, h)

	w, h = ggchart.TemperatureSize.Pixels(100)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestRoute(t *testing.T) {
	c := load(t)

	var buf bytes.Buffer
	require.NoError(t, ggchart.Write(&buf, ggchart.Route(c), ggchart.RouteSize, 100))
	svg := buf.String()

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, `width="640"`)
	assert.Contains(t, svg, `height="280"`)
	assert.Contains(t, svg, "Moscou")
	assert.Contains(t, svg, "Longitude")
	assert.Contains(t, svg, "Latitude")
	assert.Contains(t, svg, "<path")
	assert.Contains(t, svg, "<circle")
}

func TestRoutePointsVisible(t *testing.T) {
	c := load(t)

	var buf bytes.Buffer
	require.NoError(t, ggchart.Write(&buf, ggchart.Route(c), ggchart.RouteSize, 100))
	svg := buf.String()

	assert.Equal(t, len(c.Troops), strings.Count(svg, "<circle"))
	assert.NotContains(t, svg, `r="0"`)
}

func TestTemperature(t *testing.T) {
	c := load(t)

	var buf bytes.Buffer
	require.NoError(t, ggchart.Write(&buf, ggchart.Temperature(c), ggchart.TemperatureSize, 100))
	svg := buf.String()

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Dec06")
	assert.Contains(t, svg, "Temperature (°C)")
}

func TestSave(t *testing.T) {
	c := load(t)
	path := filepath.Join(t.TempDir(), "temperature_plot.svg")

	require.NoError(t, ggchart.Save(path, ggchart.Temperature(c), ggchart.TemperatureSize, 50))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `width="320"`)
}

func TestWriteBadDPI(t *testing.T) {
	var buf bytes.Buffer
	err := ggchart.Write(&buf, ggchart.Temperature(load(t)), ggchart.TemperatureSize, 0)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
