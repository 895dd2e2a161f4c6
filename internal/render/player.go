package render

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

var (
	styleBg     = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 27, 38))
	styleTrail  = styleBg.Foreground(tcell.NewRGBColor(100, 160, 220))
	styleHead   = styleBg.Foreground(tcell.NewRGBColor(255, 160, 50)).Bold(true)
	styleGround = styleBg.Foreground(tcell.NewRGBColor(90, 90, 100))
	styleStatus = styleBg.Foreground(tcell.NewRGBColor(200, 200, 200))
)

// playSeconds is how long one pass over the trajectory takes on screen.
const playSeconds = 4

// Player animates a trajectory on a terminal screen. The caller owns the
// screen and is responsible for Init and Fini.
type Player struct {
	screen  tcell.Screen
	tr      engine.Trajectory
	fps     int
	indices []int
}

// NewPlayer prepares tr for playback on screen at fps frames per second.
func NewPlayer(screen tcell.Screen, tr engine.Trajectory, fps int) *Player {
	if fps <= 0 {
		fps = 60
	}
	return &Player{
		screen:  screen,
		tr:      tr,
		fps:     fps,
		indices: FrameIndices(tr.Len(), fps*playSeconds),
	}
}

// Frames returns the number of animation frames.
func (p *Player) Frames() int { return len(p.indices) }

// Run plays the animation and then holds the final frame until ctx is done or
// the user presses Esc, Ctrl-C or q. Space restarts playback.
func (p *Player) Run(ctx context.Context) error {
	if p.tr.Len() == 0 {
		return fmt.Errorf("play: empty trajectory")
	}

	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	frame := 0
	p.DrawFrame(frame)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					frame = 0
					p.DrawFrame(frame)
				}
			case *tcell.EventResize:
				p.screen.Sync()
				p.DrawFrame(frame)
			}

		case <-ticker.C:
			if frame < len(p.indices)-1 {
				frame++
				p.DrawFrame(frame)
			}
		}
	}
}

// DrawFrame renders animation frame k: the trail of samples up to the frame's
// sample index, the projectile head, the launch-height line and a status row.
func (p *Player) DrawFrame(k int) {
	s := p.screen
	s.Fill(' ', styleBg)

	w, h := s.Size()
	rows := h - 1 // bottom row is status
	if w < 2 || rows < 2 || len(p.indices) == 0 {
		s.Show()
		return
	}
	k = max(0, min(k, len(p.indices)-1))
	upto := p.indices[k]

	b := DataBounds(p.tr)
	toCell := func(x, y float64) (int, int) {
		col := int(math.Round((x - b.MinX) / (b.MaxX - b.MinX) * float64(w-1)))
		row := int(math.Round((b.MaxY - y) / (b.MaxY - b.MinY) * float64(rows-1)))
		return col, row
	}

	_, groundRow := toCell(0, p.tr.Params.Origin.Y)
	if groundRow >= 0 && groundRow < rows {
		for x := 0; x < w; x++ {
			s.SetContent(x, groundRow, '_', nil, styleGround)
		}
	}

	samples := p.tr.Samples
	for i := 1; i <= upto; i++ {
		col, row := toCell(samples[i].X, samples[i].Y)
		prevCol, prevRow := toCell(samples[i-1].X, samples[i-1].Y)
		if col < 0 || col >= w || row < 0 || row >= rows {
			continue
		}
		angle := math.Atan2(float64(row-prevRow), float64(col-prevCol))
		s.SetContent(col, row, AngleToChar(angle), nil, styleTrail)
	}

	head := samples[upto]
	col, row := toCell(head.X, head.Y)
	if col >= 0 && col < w && row >= 0 && row < rows {
		s.SetContent(col, row, 'o', nil, styleHead)
	}

	status := fmt.Sprintf(" t=%.3f x=%.3f y=%.3f  [%d/%d]  Space: replay | Esc/q: quit",
		head.T, head.X, head.Y, upto+1, len(samples))
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		s.SetContent(i, h-1, r, nil, styleStatus)
	}
	s.Show()
}

// AngleToChar picks a line glyph for a heading in screen coordinates
// (y grows downward).
func AngleToChar(rad float64) rune {
	if rad < 0 {
		rad += math.Pi
	}
	deg := rad * 180 / math.Pi
	if deg < 22.5 || deg > 157.5 {
		return '-'
	}
	if deg < 67.5 {
		return '\\'
	}
	if deg < 112.5 {
		return '|'
	}
	return '/'
}
