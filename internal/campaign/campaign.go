// Package campaign loads the three tables behind Minard's chart of the
// 1812 Russian campaign: cities, temperatures on the retreat, and troop
// positions.
package campaign

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"
)

// Direction tells whether a troop position belongs to the advance on
// Moscow or to the retreat from it.
type Direction int

const (
	Advance Direction = iota + 1
	Retreat
)

// ParseDirection accepts the single letter codes used in the data files
// ("A", "R") as well as the spelled out names, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "advance":
		return Advance, nil
	case "r", "retreat":
		return Retreat, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrBadValue, s)
}

// Code returns the letter used for d in the data files.
func (d Direction) Code() string {
	switch d {
	case Advance:
		return "A"
	case Retreat:
		return "R"
	}
	return "?"
}

func (d Direction) String() string {
	switch d {
	case Advance:
		return "Advance"
	case Retreat:
		return "Retreat"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// City is a labelled point on the route map.
type City struct {
	Name      string
	Long, Lat float64
}

// Reading is one temperature observation taken during the retreat.
// Date is the label printed on the chart, such as "Oct18".
type Reading struct {
	Date    string
	Long    float64
	Celsius float64
}

// Position is one troop record.
type Position struct {
	Long, Lat float64
	Survivors int
	Direction Direction
	Group     int

	// Segment keys the path this position is drawn on. Consecutive
	// positions with the same key are joined by a line.
	Segment int
}

// Troops is a list of positions in file order.
type Troops []Position

// Filter returns the positions moving in direction d with the given group,
// keeping their order.
func (t Troops) Filter(d Direction, group int) Troops {
	var ret Troops
	for _, p := range t {
		if p.Direction == d && p.Group == group {
			ret = append(ret, p)
		}
	}
	return ret
}

// Groups returns the distinct group numbers in ascending order.
func (t Troops) Groups() []int {
	seen := make(map[int]bool)
	var groups []int
	for _, p := range t {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	sort.Ints(groups)
	return groups
}

// Survivors returns the survivor counts as floats, for plotting and stats.
func (t Troops) Survivors() []float64 {
	v := make([]float64, len(t))
	for i, p := range t {
		v[i] = float64(p.Survivors)
	}
	return v
}

// Bounds returns the longitude and latitude extent of t. It returns zeros
// for an empty list.
func (t Troops) Bounds() (minLong, maxLong, minLat, maxLat float64) {
	if len(t) == 0 {
		return 0, 0, 0, 0
	}
	longs := make([]float64, len(t))
	lats := make([]float64, len(t))
	for i, p := range t {
		longs[i], lats[i] = p.Long, p.Lat
	}
	return floats.Min(longs), floats.Max(longs), floats.Min(lats), floats.Max(lats)
}

// Campaign holds everything read from a data directory.
type Campaign struct {
	Cities       []City
	Temperatures []Reading
	Troops       Troops

	cities, temps, troops dataframe.DataFrame
}

// TemperatureRange returns the lowest and highest reading.
func (c *Campaign) TemperatureRange() (lo, hi float64) {
	if len(c.Temperatures) == 0 {
		return 0, 0
	}
	v := make([]float64, len(c.Temperatures))
	for i, r := range c.Temperatures {
		v[i] = r.Celsius
	}
	return floats.Min(v), floats.Max(v)
}

// Describe prints each table followed by its summary statistics.
func (c *Campaign) Describe(w io.Writer) {
	for _, t := range []struct {
		name string
		df   dataframe.DataFrame
	}{
		{CitiesFile, c.cities},
		{TemperaturesFile, c.temps},
		{TroopsFile, c.troops},
	} {
		fmt.Fprintf(w, "== %s\n", t.name)
		fmt.Fprintln(w, t.df)
		fmt.Fprintln(w, t.df.Describe())
	}
}

// Frame returns the raw dataframe loaded from the named file, one of
// CitiesFile, TemperaturesFile or TroopsFile.
func (c *Campaign) Frame(name string) (dataframe.DataFrame, bool) {
	switch name {
	case CitiesFile:
		return c.cities, true
	case TemperaturesFile:
		return c.temps, true
	case TroopsFile:
		return c.troops, true
	}
	return dataframe.DataFrame{}, false
}
