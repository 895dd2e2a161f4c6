// Package render turns a sampled trajectory into pictures: a static PNG plot,
// an animated GIF, a terminal chart, a summary table and an interactive
// terminal player.
//
// Renderers consume engine.Trajectory in sample order. They never interpolate
// new points; where a display has fewer slots than samples (GIF frames,
// terminal columns) they pick existing samples via FrameIndices, always
// keeping the first and the last.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

// dpi is the raster resolution used for every image canvas.
const dpi = 96

var (
	trailColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	headColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// PlotOptions sizes a raster image in pixels.
type PlotOptions struct {
	Width  int
	Height int
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	return o
}

// Bounds is the axis-aligned extent of the plotted data.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// DataBounds returns the extent of tr's samples padded by 5% on each side, or
// by one unit when an axis has no span.
func DataBounds(tr engine.Trajectory) Bounds {
	if tr.Len() == 0 {
		return Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	}
	b := Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
	for _, s := range tr.Samples {
		b.MinX = math.Min(b.MinX, s.X)
		b.MaxX = math.Max(b.MaxX, s.X)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxY = math.Max(b.MaxY, s.Y)
	}
	b.MinX, b.MaxX = pad(b.MinX, b.MaxX)
	b.MinY, b.MaxY = pad(b.MinY, b.MaxY)
	return b
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		return lo - 1, hi + 1
	}
	return lo - 0.05*span, hi + 0.05*span
}

// Plot writes a PNG scatter of height against distance for every sample.
func Plot(w io.Writer, tr engine.Trajectory, opts PlotOptions) error {
	opts = opts.withDefaults()
	if tr.Len() == 0 {
		return fmt.Errorf("plot: empty trajectory")
	}

	p, err := trajectoryPlot(tr, tr.Len()-1, DataBounds(tr))
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	c := newCanvas(opts)
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("plot: writing PNG: %w", err)
	}
	return nil
}

// trajectoryPlot builds a plot of samples [0, upto] with fixed axes and the
// sample at upto highlighted.
func trajectoryPlot(tr engine.Trajectory, upto int, b Bounds) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title(tr.Params)
	p.X.Label.Text = "Distance"
	p.Y.Label.Text = "Height"
	p.Add(plotter.NewGrid())

	trail, err := plotter.NewScatter(points(tr.Samples[:upto+1]))
	if err != nil {
		return nil, err
	}
	trail.GlyphStyle.Color = trailColor
	trail.GlyphStyle.Radius = vg.Points(1)
	trail.GlyphStyle.Shape = draw.CircleGlyph{}

	head, err := plotter.NewScatter(points(tr.Samples[upto : upto+1]))
	if err != nil {
		return nil, err
	}
	head.GlyphStyle.Color = headColor
	head.GlyphStyle.Radius = vg.Points(3)
	head.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(trail, head)
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY
	return p, nil
}

func points(samples []engine.Sample) plotter.XYs {
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = s.X
		xys[i].Y = s.Y
	}
	return xys
}

func title(p engine.Params) string {
	return fmt.Sprintf("Trajectory (theta=%g, v=%g, g=%g)", p.LaunchAngle, p.InitialSpeed, p.Gravity)
}

func newCanvas(opts PlotOptions) *vgimg.Canvas {
	w := vg.Length(opts.Width) * vg.Inch / dpi
	h := vg.Length(opts.Height) * vg.Inch / dpi
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
}
