package trend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/trend"
)

func TestFitExact(t *testing.T) {
	var readings []campaign.Reading
	for _, long := range []float64{25, 28, 31, 34, 37} {
		readings = append(readings, campaign.Reading{Long: long, Celsius: 2*long - 70})
	}
	l, err := trend.Fit(readings)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, l.Slope, 1e-9)
	assert.InDelta(t, -70.0, l.Intercept, 1e-9)
	assert.InDelta(t, 1.0, l.R2, 1e-9)
	assert.InDelta(t, 0.0, l.At(35), 1e-9)
}

func TestFitCampaign(t *testing.T) {
	c, err := campaign.Load("../../ggplot2-minard-gallery")
	require.NoError(t, err)

	l, err := trend.Fit(c.Temperatures)
	require.NoError(t, err)
	// It got colder the further west the army retreated.
	assert.Greater(t, l.Slope, 0.0)
	assert.Greater(t, l.R2, 0.5)
	assert.NotEmpty(t, l.Formula)
}

func TestFitTooFew(t *testing.T) {
	_, err := trend.Fit([]campaign.Reading{{Long: 25, Celsius: -20}, {Long: 30, Celsius: -10}})
	require.ErrorIs(t, err, trend.ErrTooFewReadings)
}
