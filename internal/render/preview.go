package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/term"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

var previewStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// Preview draws height over the course of the flight as a terminal chart.
// Horizontal distance is linear in time, so sample order reproduces the shape
// of the y-against-x curve. At most width samples are shown.
func Preview(tr engine.Trajectory, width, height int) string {
	if tr.Len() == 0 {
		return previewStyle.Render("no samples")
	}
	if height <= 0 {
		height = 12
	}

	idx := FrameIndices(tr.Len(), width)
	ys := make([]float64, len(idx))
	for i, j := range idx {
		ys[i] = tr.Samples[j].Y
	}

	last := tr.Last()
	caption := fmt.Sprintf("%s  |  %d samples, landed at x=%.4f after t=%.4f",
		title(tr.Params), tr.Len(), last.X, last.T)

	graph := asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	return previewStyle.Render(graph)
}

// TerminalWidth reports the column count of the terminal on fd, or fallback
// when fd is not a terminal.
func TerminalWidth(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
