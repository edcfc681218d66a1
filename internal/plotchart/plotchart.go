// Package plotchart draws Minard's chart with gonum/plot, building the
// variable width route segments and both legends by hand. The figure has
// two panels: the route map on top and the temperature chart beneath it.
package plotchart

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/route"
	"berkotech.co/minard/internal/trend"
)

// Figure size. The route panel takes five sixths of the height.
const (
	Width       = 25 * vg.Inch
	Height      = 12 * vg.Inch
	routeShare  = 5.0 / 6.0
	panelMargin = 0.1 * vg.Inch
)

var (
	AdvanceColors = []color.Color{
		color.RGBA{0xF1, 0x4A, 0x37, 0xff},
		color.RGBA{0xF1, 0x75, 0x66, 0xff},
		color.RGBA{0xF1, 0xBF, 0xB5, 0xff},
	}
	RetreatColors = []color.Color{
		color.RGBA{0x75, 0x5F, 0xD4, 0xff},
		color.RGBA{0x9A, 0x92, 0xD4, 0xff},
		color.RGBA{0xB4, 0xA9, 0xD7, 0xff},
	}
	grey = color.Gray{0x80}
)

// Options controls optional parts of the figure.
type Options struct {
	// Trend adds a least squares line to the temperature panel.
	Trend bool
}

// Figure is the two panel chart.
type Figure struct {
	Route       *plot.Plot
	Temperature *plot.Plot
}

func font(name string, size float64) (vg.Font, error) {
	f, err := vg.MakeFont(name, vg.Points(size))
	if err != nil {
		return vg.Font{}, fmt.Errorf("font %s: %w", name, err)
	}
	return f, nil
}

// colorFor returns the colour of a group, cycling through the palette
// when there are more groups than colours.
func colorFor(palette []color.Color, group int) color.Color {
	i := (group - 1) % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}

// New builds the figure for c.
func New(c *campaign.Campaign, opts Options) (*Figure, error) {
	rp, err := routePlot(c)
	if err != nil {
		return nil, fmt.Errorf("route panel: %w", err)
	}
	tp, err := temperaturePlot(c, opts)
	if err != nil {
		return nil, fmt.Errorf("temperature panel: %w", err)
	}
	return &Figure{Route: rp, Temperature: tp}, nil
}

func routePlot(c *campaign.Campaign) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 23, 38
	p.Y.Min, p.Y.Max = 54, 57
	p.Y.Label.Text = "Latitude"
	p.Y.Label.Font.Size = vg.Points(14)

	legs, err := route.Legs(c.Troops)
	if err != nil {
		return nil, err
	}

	// Retreats go underneath advances.
	groups := c.Troops.Groups()
	for _, d := range []campaign.Direction{campaign.Retreat, campaign.Advance} {
		palette := RetreatColors
		if d == campaign.Advance {
			palette = AdvanceColors
		}
		for _, g := range groups {
			segs := route.Bundle(legs, d, g)
			if len(segs) == 0 {
				continue
			}
			p.Add(&Segments{Segs: segs, Color: colorFor(palette, g)})
		}
	}

	bold, err := font("Helvetica-Bold", 12)
	if err != nil {
		return nil, err
	}
	var notes Annotations
	for _, city := range c.Cities {
		notes = append(notes, Annotation{
			X: city.Long, Y: city.Lat, Text: city.Name,
			Style: draw.TextStyle{Color: color.Black, Font: bold},
		})
	}

	title, err := font("Helvetica", 60)
	if err != nil {
		return nil, err
	}
	subtitle, err := font("Helvetica-Bold", 20)
	if err != nil {
		return nil, err
	}
	notes = append(notes,
		Annotation{X: 23.75, Y: 56.5, Text: "Napolean's March to Moscow",
			Style: draw.TextStyle{Color: color.Black, Font: title}},
		Annotation{X: 23.75, Y: 56.25, Text: "A reproduction of Charles Minard's visualization",
			Style: draw.TextStyle{Color: color.Black, Font: subtitle}},
	)
	p.Add(notes)

	// Survivor legend, in the built in legend slot.
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(16)
	p.Legend.Add("Survivors")
	for _, s := range route.SurvivorBreaks {
		p.Legend.Add(strconv.Itoa(s), LineThumb{Color: color.Black, Width: vg.Points(route.Width(s))})
	}

	// Group legend, bottom right: advances in the left column, retreats
	// in the right.
	box := &LegendBox{Gap: vg.Points(16)}
	for _, d := range []campaign.Direction{campaign.Advance, campaign.Retreat} {
		palette := AdvanceColors
		if d == campaign.Retreat {
			palette = RetreatColors
		}
		col, err := plot.NewLegend()
		if err != nil {
			return nil, err
		}
		col.TextStyle.Font.Size = vg.Points(16)
		col.YOffs = 0.2 * vg.Inch
		for _, g := range groups {
			l := route.Leg{Direction: d, Group: g}
			col.Add(l.Label(), PatchThumb{Color: colorFor(palette, g)})
		}
		box.Columns = append(box.Columns, col)
	}
	p.Add(box)

	return p, nil
}

func temperaturePlot(c *campaign.Campaign, opts Options) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	lo, hi := c.TemperatureRange()
	p.X.Min, p.X.Max = 23, 38
	p.Y.Min, p.Y.Max = lo-5, hi+5
	p.X.Label.Text = "Longitude"
	p.X.Label.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Temperature (°C)"
	p.Y.Label.Font.Size = vg.Points(14)

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	p.Add(grid)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = grey
	zero.Width = vg.Points(1)
	zero.Dashes = dashes
	p.Add(zero)

	pts := make(plotter.XYs, len(c.Temperatures))
	for i, r := range c.Temperatures {
		pts[i].X = r.Long
		pts[i].Y = r.Celsius
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = grey
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = grey
	points.Radius = vg.Points(2.5)
	p.Add(line, points)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(16)
	p.Legend.Add("Temperature", line, points)

	if opts.Trend {
		fit, err := trend.Fit(c.Temperatures)
		if err != nil {
			return nil, err
		}
		tl := plotter.NewFunction(fit.At)
		tl.Color = color.Black
		tl.Width = vg.Points(1)
		tl.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(tl)
		p.Legend.Add("Trend", tl)
	}

	bold, err := font("Helvetica-Bold", 12)
	if err != nil {
		return nil, err
	}
	var notes Annotations
	for _, r := range c.Temperatures {
		notes = append(notes, Annotation{
			X: r.Long, Y: r.Celsius, Text: r.Date,
			Style:  draw.TextStyle{Color: color.Black, Font: bold, XAlign: draw.XCenter, YAlign: draw.YTop},
			Offset: vg.Point{Y: -vg.Points(10)},
		})
	}
	p.Add(notes)
	return p, nil
}

// Draw draws both panels onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	h := dc.Max.Y - dc.Min.Y
	split := dc.Min.Y + vg.Length(1-routeShare)*h

	top := dc
	top.Min.Y = split + panelMargin
	f.Route.Draw(top)

	bottom := dc
	bottom.Max.Y = split - panelMargin
	f.Temperature.Draw(bottom)
}

func (f *Figure) canvas(dpi int) (*vgimg.Canvas, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("bad dpi %d", dpi)
	}
	img := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(dpi))
	f.Draw(draw.New(img))
	return img, nil
}

// Image renders the figure at the given resolution.
func (f *Figure) Image(dpi int) (image.Image, error) {
	img, err := f.canvas(dpi)
	if err != nil {
		return nil, err
	}
	return img.Image(), nil
}

// WritePNG renders the figure as PNG.
func (f *Figure) WritePNG(w io.Writer, dpi int) error {
	img, err := f.canvas(dpi)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// Save writes the figure to path as PNG.
func (f *Figure) Save(path string, dpi int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WritePNG(out, dpi); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}
