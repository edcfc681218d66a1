package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/route"
)

func pos(long, lat float64, survivors int, d campaign.Direction, group, seg int) campaign.Position {
	return campaign.Position{Long: long, Lat: lat, Survivors: survivors, Direction: d, Group: group, Segment: seg}
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1.0, route.Width(6000))
	assert.InDelta(t, 56.667, route.Width(340000), 0.001)
	assert.Equal(t, 0.0, route.Width(0))
}

func TestSegments(t *testing.T) {
	ps := []campaign.Position{
		pos(24.0, 54.9, 340000, campaign.Advance, 1, 1),
		pos(24.5, 55.0, 320000, campaign.Advance, 1, 1),
		pos(25.5, 54.5, 300000, campaign.Advance, 1, 1),
	}
	segs, err := route.Segments(ps)
	require.NoError(t, err)
	require.Len(t, segs, 2)

	assert.Equal(t, route.Point{Long: 24.0, Lat: 54.9}, segs[0].From)
	assert.Equal(t, route.Point{Long: 24.5, Lat: 55.0}, segs[0].To)
	assert.Equal(t, 340000, segs[0].Survivors)
	assert.Equal(t, route.Width(340000), segs[0].Width)

	assert.Equal(t, route.Point{Long: 24.5, Lat: 55.0}, segs[1].From)
	assert.Equal(t, route.Point{Long: 25.5, Lat: 54.5}, segs[1].To)
	assert.Equal(t, 320000, segs[1].Survivors)
}

func TestSegmentsTwoPoints(t *testing.T) {
	segs, err := route.Segments([]campaign.Position{
		pos(36.0, 55.0, 6000, campaign.Retreat, 3, 6),
		pos(37.6, 55.8, 4000, campaign.Retreat, 3, 6),
	})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, route.Point{Long: 36.0, Lat: 55.0}, segs[0].From)
	assert.Equal(t, route.Point{Long: 37.6, Lat: 55.8}, segs[0].To)
	assert.Equal(t, 6000, segs[0].Survivors)
	assert.Equal(t, 1.0, segs[0].Width)
}

func TestSegmentsShort(t *testing.T) {
	segs, err := route.Segments(nil)
	require.NoError(t, err)
	assert.Empty(t, segs)

	segs, err = route.Segments([]campaign.Position{pos(24, 55, 10, campaign.Advance, 1, 1)})
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestLegs(t *testing.T) {
	c, err := campaign.Load("../../ggplot2-minard-gallery")
	require.NoError(t, err)

	legs, err := route.Legs(c.Troops)
	require.NoError(t, err)
	require.Len(t, legs, 6)

	var labels []string
	total := 0
	for _, l := range legs {
		labels = append(labels, l.Label())
		total += len(l.Positions)
		assert.Len(t, l.Segments, len(l.Positions)-1)
	}
	assert.Equal(t, []string{
		"Advance Group 1", "Retreat Group 1",
		"Advance Group 2", "Retreat Group 2",
		"Advance Group 3", "Retreat Group 3",
	}, labels)
	assert.Equal(t, len(c.Troops), total)

	adv := route.Bundle(legs, campaign.Advance, 1)
	require.Len(t, adv, 15)
	assert.Equal(t, route.Point{Long: 37.6, Lat: 55.8}, adv[14].To)
}

func TestLegsNonContiguousKey(t *testing.T) {
	ps := campaign.Troops{
		pos(24, 55, 100, campaign.Advance, 1, 5),
		pos(25, 55, 90, campaign.Advance, 1, 5),
		pos(26, 55, 80, campaign.Retreat, 2, 2),
		pos(27, 55, 70, campaign.Advance, 1, 5),
	}
	legs, err := route.Legs(ps)
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.Equal(t, 5, legs[0].Key)
	assert.Len(t, legs[0].Positions, 3)
	assert.Len(t, legs[0].Segments, 2)
	assert.Equal(t, 2, legs[1].Key)
	assert.Empty(t, legs[1].Segments)
}
