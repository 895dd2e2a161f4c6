package render

import (
	"fmt"
	"image"
	"image/color/palette"
	imagedraw "image/draw"
	"image/gif"
	"io"

	"gonum.org/v1/plot/vg/draw"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

// AnimationOptions configures Animate.
type AnimationOptions struct {
	PlotOptions
	MaxFrames int // upper bound on frames; the sample count is used when smaller
	Delay     int // per-frame delay in 100ths of a second
	Loop      bool
}

// FrameIndices spreads up to maxFrames sample indices evenly over n samples.
// Indices are strictly increasing, start at 0 and end at n-1. A non-positive
// maxFrames means one frame per sample.
func FrameIndices(n, maxFrames int) []int {
	if n <= 0 {
		return nil
	}
	frames := n
	if maxFrames > 0 && maxFrames < n {
		frames = maxFrames
	}
	if frames == 1 {
		return []int{n - 1}
	}
	idx := make([]int, frames)
	for k := range idx {
		idx[k] = k * (n - 1) / (frames - 1)
	}
	return idx
}

// Animate writes a GIF in which frame k shows every sample up to the k-th
// frame index, with the newest sample highlighted. Axes stay fixed across
// frames so the point visibly travels along the curve.
func Animate(w io.Writer, tr engine.Trajectory, opts AnimationOptions) error {
	opts.PlotOptions = opts.PlotOptions.withDefaults()
	if opts.Delay <= 0 {
		opts.Delay = 4
	}
	if tr.Len() == 0 {
		return fmt.Errorf("animate: empty trajectory")
	}

	b := DataBounds(tr)
	indices := FrameIndices(tr.Len(), opts.MaxFrames)

	anim := gif.GIF{LoopCount: -1}
	if opts.Loop {
		anim.LoopCount = 0
	}
	for _, upto := range indices {
		frame, err := renderFrame(tr, upto, b, opts.PlotOptions)
		if err != nil {
			return fmt.Errorf("animate: frame at sample %d: %w", upto, err)
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, opts.Delay)
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("animate: encoding GIF: %w", err)
	}
	return nil
}

func renderFrame(tr engine.Trajectory, upto int, b Bounds, opts PlotOptions) (*image.Paletted, error) {
	p, err := trajectoryPlot(tr, upto, b)
	if err != nil {
		return nil, err
	}
	c := newCanvas(opts)
	p.Draw(draw.New(c))

	src := c.Image()
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	imagedraw.Draw(frame, frame.Rect, src, src.Bounds().Min, imagedraw.Src)
	return frame, nil
}
