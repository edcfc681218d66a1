// Package ggchart draws Minard's route map and temperature chart as
// grammar-of-graphics plots: each chart is a data table plus layers that
// map its columns to position, colour and size.
package ggchart

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"berkotech.co/minard/internal/campaign"
)

// Size is a chart size in inches.
type Size struct {
	Width, Height float64
}

// Pixels returns the pixel dimensions of s at the given resolution.
func (s Size) Pixels(dpi int) (w, h int) {
	return int(s.Width * float64(dpi)), int(s.Height * float64(dpi))
}

var (
	// The route map keeps 3.5 units of latitude per unit of
	// longitude over its 16 x 2 degree window.
	RouteSize       = Size{6.4, 2.8}
	TemperatureSize = Size{6.4, 4.8}
)

var (
	advanceColor = color.RGBA{0xF1, 0x4A, 0x37, 0xff}
	retreatColor = color.RGBA{0x75, 0x5F, 0xD4, 0xff}
	lineColor    = color.Gray{0xbe}
)

// Point radii as a fraction of the smaller panel dimension. Radii are
// truncated to whole pixels, so the smallest point stays visible once the
// panel is 100 pixels across, which a route map reaches from 100 dpi.
const (
	minPointSize = 0.01
	maxPointSize = 0.05
)

func troopTable(t campaign.Troops) *table.Table {
	n := len(t)
	longs, lats := make([]float64, n), make([]float64, n)
	survivors, groups, segments := make([]int, n), make([]int, n), make([]int, n)
	dirs := make([]string, n)
	for i, p := range t {
		longs[i], lats[i] = p.Long, p.Lat
		survivors[i] = p.Survivors
		groups[i] = p.Group
		segments[i] = p.Segment
		dirs[i] = p.Direction.Code()
	}
	return table.NewBuilder(nil).
		Add("long", longs).
		Add("lat", lats).
		Add("survivors", survivors).
		Add("direction", dirs).
		Add("group", groups).
		Add("segment", segments).
		Done()
}

func cityTable(cs []campaign.City) *table.Table {
	names := make([]string, len(cs))
	longs, lats := make([]float64, len(cs)), make([]float64, len(cs))
	for i, c := range cs {
		names[i], longs[i], lats[i] = c.Name, c.Long, c.Lat
	}
	return table.NewBuilder(nil).
		Add("long", longs).
		Add("lat", lats).
		Add("city", names).
		Done()
}

func temperatureTable(rs []campaign.Reading) *table.Table {
	longs, temps := make([]float64, len(rs)), make([]float64, len(rs))
	dates := make([]string, len(rs))
	for i, r := range rs {
		longs[i], temps[i], dates[i] = r.Long, r.Celsius, r.Date
	}
	return table.NewBuilder(nil).
		Add("long", longs).
		Add("temp", temps).
		Add("date", dates).
		Done()
}

// Route returns the route map: one path per segment coloured by
// direction, points sized by survivors, and city names.
func Route(c *campaign.Campaign) *gg.Plot {
	p := gg.NewPlot(troopTable(c.Troops))

	stroke := gg.NewOrdinalScale()
	stroke.Ranger(gg.NewColorRanger([]color.Color{advanceColor, retreatColor}))
	p.SetScale("stroke", stroke)

	size := gg.NewLinearScaler()
	size.Ranger(gg.NewFloatRanger(minPointSize, maxPointSize))
	p.SetScale("size", size)

	p.SetScale("x", gg.NewLinearScaler().SetMin(24).SetMax(40))
	p.SetScale("y", gg.NewLinearScaler().SetMin(54).SetMax(56))

	p.GroupBy("segment")
	p.Add(gg.LayerPaths{X: "long", Y: "lat", Color: "direction"})
	p.Add(gg.LayerPoints{X: "long", Y: "lat", Color: "direction", Size: "survivors"})

	p.Save()
	p.SetData(cityTable(c.Cities))
	p.Add(gg.LayerTags{X: "long", Y: "lat", Label: "city"})
	p.Restore()

	p.Add(
		gg.Title("Napoleon’s March to Moscow"),
		gg.AxisLabel("x", "Longitude"),
		gg.AxisLabel("y", "Latitude"),
	)
	return p
}

// Temperature returns the temperature chart: a grey line through the
// readings, a black point on each and its date.
func Temperature(c *campaign.Campaign) *gg.Plot {
	p := gg.NewPlot(temperatureTable(c.Temperatures))
	p.SetScale("x", gg.NewLinearScaler().SetMin(24).SetMax(43.32))

	grey := p.Const(lineColor)
	p.Add(gg.LayerLines{X: "long", Y: "temp", Color: grey})
	black := p.Const(color.Black)
	p.Add(gg.LayerPoints{X: "long", Y: "temp", Color: black})
	p.Add(gg.LayerTags{X: "long", Y: "temp", Label: "date"})

	p.Add(
		gg.AxisLabel("x", "Longitude"),
		gg.AxisLabel("y", "Temperature (°C)"),
	)
	return p
}

// Write renders p as SVG of size s at the given resolution.
func Write(w io.Writer, p *gg.Plot, s Size, dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("bad dpi %d", dpi)
	}
	pw, ph := s.Pixels(dpi)
	return p.WriteSVG(w, pw, ph)
}

// Save writes p to path as SVG.
func Save(path string, p *gg.Plot, s Size, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, p, s, dpi); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
