// Package route turns troop positions into the line segments of Minard's
// route map. A segment's width is proportional to the survivors at its
// starting point.
package route

import (
	"fmt"

	"gorgonia.org/tensor"

	"berkotech.co/minard/internal/campaign"
)

// WidthDivisor converts a survivor count into a line width in points.
const WidthDivisor = 6000

// SurvivorBreaks are the survivor counts shown in the line width legend.
var SurvivorBreaks = []int{10000, 20000, 50000, 100000}

// Width returns the line width in points for the given survivor count.
func Width(survivors int) float64 {
	return float64(survivors) / WidthDivisor
}

// Point is a map location.
type Point struct {
	Long, Lat float64
}

// Segment joins two consecutive positions.
type Segment struct {
	From, To  Point
	Survivors int
	Width     float64
}

// Segments joins consecutive positions of ps. Each segment carries the
// survivors of the position it starts from. Fewer than two positions
// yield no segments.
func Segments(ps []campaign.Position) ([]Segment, error) {
	n := len(ps)
	if n < 2 {
		return nil, nil
	}

	// Row i of the (n-1, 2, 2) tensor holds the (long, lat) pair of
	// position i followed by that of position i+1.
	backing := make([]float64, 0, 4*(n-1))
	for i := 1; i < n; i++ {
		from, to := ps[i-1], ps[i]
		backing = append(backing, from.Long, from.Lat, to.Long, to.Lat)
	}
	pairs := tensor.New(tensor.WithShape(n-1, 2, 2), tensor.WithBacking(backing))
	if s := pairs.Shape(); len(s) != 3 || s[0] != n-1 {
		return nil, fmt.Errorf("unexpected segment shape %v", s)
	}

	segs := make([]Segment, n-1)
	for i := range segs {
		from, err := pointAt(pairs, i, 0)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		to, err := pointAt(pairs, i, 1)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segs[i] = Segment{
			From:      from,
			To:        to,
			Survivors: ps[i].Survivors,
			Width:     Width(ps[i].Survivors),
		}
	}
	return segs, nil
}

// pointAt reads end j of segment i from a pairs tensor.
func pointAt(pairs *tensor.Dense, i, j int) (Point, error) {
	long, err := pairs.At(i, j, 0)
	if err != nil {
		return Point{}, err
	}
	lat, err := pairs.At(i, j, 1)
	if err != nil {
		return Point{}, err
	}
	return Point{Long: long.(float64), Lat: lat.(float64)}, nil
}

// Leg is the run of positions drawn as one path.
type Leg struct {
	Key       int
	Direction campaign.Direction
	Group     int
	Positions campaign.Troops
	Segments  []Segment
}

// Label names the leg the way the chart legend does, e.g. "Advance Group 1".
func (l Leg) Label() string {
	return fmt.Sprintf("%v Group %d", l.Direction, l.Group)
}

// Legs partitions ps by segment key, in order of first appearance. The
// direction and group of a leg are those of its first position.
func Legs(ps campaign.Troops) ([]Leg, error) {
	var (
		legs  []Leg
		index = make(map[int]int)
	)
	for _, p := range ps {
		i, ok := index[p.Segment]
		if !ok {
			i = len(legs)
			index[p.Segment] = i
			legs = append(legs, Leg{Key: p.Segment, Direction: p.Direction, Group: p.Group})
		}
		legs[i].Positions = append(legs[i].Positions, p)
	}
	for i := range legs {
		segs, err := Segments(legs[i].Positions)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", legs[i].Key, err)
		}
		legs[i].Segments = segs
	}
	return legs, nil
}

// Bundle returns the segments of every leg moving in direction d with the
// given group, joined in leg order.
func Bundle(legs []Leg, d campaign.Direction, group int) []Segment {
	var segs []Segment
	for _, l := range legs {
		if l.Direction == d && l.Group == group {
			segs = append(segs, l.Segments...)
		}
	}
	return segs
}
