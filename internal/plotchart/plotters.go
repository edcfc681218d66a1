package plotchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"berkotech.co/minard/internal/route"
)

// Segments draws each route segment as a straight line of its own width
// with round ends.
type Segments struct {
	Segs  []route.Segment
	Color color.Color
}

// Plot implements plot.Plotter.
func (s *Segments) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, seg := range s.Segs {
		w := vg.Points(seg.Width)
		if w <= 0 {
			continue
		}
		from := vg.Point{X: trX(seg.From.Long), Y: trY(seg.From.Lat)}
		to := vg.Point{X: trX(seg.To.Long), Y: trY(seg.To.Lat)}
		sty := draw.LineStyle{Color: s.Color, Width: w}
		c.StrokeLines(sty, c.ClipLinesXY([]vg.Point{from, to})...)
		for _, pt := range []vg.Point{from, to} {
			if c.Contains(pt) {
				fillCircle(c, pt, w/2, s.Color)
			}
		}
	}
}

// DataRange implements plot.DataRanger.
func (s *Segments) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, seg := range s.Segs {
		for _, p := range []route.Point{seg.From, seg.To} {
			xmin, xmax = math.Min(xmin, p.Long), math.Max(xmax, p.Long)
			ymin, ymax = math.Min(ymin, p.Lat), math.Max(ymax, p.Lat)
		}
	}
	return xmin, xmax, ymin, ymax
}

func fillCircle(c draw.Canvas, center vg.Point, r vg.Length, clr color.Color) {
	var p vg.Path
	p.Move(vg.Point{X: center.X + r, Y: center.Y})
	p.Arc(center, r, 0, 2*math.Pi)
	p.Close()
	c.SetColor(clr)
	c.Fill(p)
}

// Annotation is text placed at a data coordinate, shifted by Offset.
type Annotation struct {
	X, Y   float64
	Text   string
	Style  draw.TextStyle
	Offset vg.Point
}

// Annotations draws text on top of a plot. It has no data range so it
// never widens the axes.
type Annotations []Annotation

// Plot implements plot.Plotter.
func (as Annotations) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, a := range as {
		pt := vg.Point{X: trX(a.X) + a.Offset.X, Y: trY(a.Y) + a.Offset.Y}
		c.FillText(a.Style, pt, a.Text)
	}
}

// LineThumb is a legend entry drawn as a horizontal line.
type LineThumb draw.LineStyle

// Thumbnail implements plot.Thumbnailer.
func (t LineThumb) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(draw.LineStyle(t), c.Min.X, y, c.Max.X, y)
}

// PatchThumb is a legend entry drawn as a filled square.
type PatchThumb struct {
	Color color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (t PatchThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(t.Color, c.ClipPolygonXY(pts))
}

// LegendBox draws an extra legend inside the data area, for plots that
// need more than the one built into plot.Plot. Columns are laid out right
// to left from the legend's anchor, so the first column ends up leftmost.
type LegendBox struct {
	Columns []plot.Legend
	Gap     vg.Length
}

// Plot implements plot.Plotter.
func (l *LegendBox) Plot(c draw.Canvas, _ *plot.Plot) {
	var offs vg.Length
	for i := len(l.Columns) - 1; i >= 0; i-- {
		col := l.Columns[i]
		col.XOffs -= offs
		col.Draw(c)
		r := col.Rectangle(c)
		offs += r.Max.X - r.Min.X + l.Gap
	}
}
