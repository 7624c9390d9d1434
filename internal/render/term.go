package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ising/pkg/ising"
)

// Terminal draws grids as text, two lattice rows per line using half-block
// glyphs. Down spins are the filled halves.
type Terminal struct {
	maxCols int
	style   lipgloss.Style
	lines   []string
}

// NewTerminal returns a renderer that downsamples the lattice so that a frame
// is at most maxCols characters wide. maxCols <= 0 disables downsampling.
func NewTerminal(maxCols int) *Terminal {
	return &Terminal{
		maxCols: maxCols,
		style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")),
	}
}

// SetMaxCols changes the frame width limit, e.g. after a terminal resize.
func (t *Terminal) SetMaxCols(cols int) { t.maxCols = cols }

// Draw rebuilds the frame from g.
func (t *Terminal) Draw(g ising.Grid) {
	size := g.Size()
	stride := 1
	if t.maxCols > 0 && size > t.maxCols {
		stride = (size + t.maxCols - 1) / t.maxCols
	}
	cols := (size + stride - 1) / stride
	rows := cols

	t.lines = t.lines[:0]
	var b strings.Builder
	for r := 0; r < rows; r += 2 {
		b.Reset()
		for c := 0; c < cols; c++ {
			top := !g.At(c*stride, r*stride)
			bottom := r+1 < rows && !g.At(c*stride, (r+1)*stride)
			b.WriteRune(glyph(top, bottom))
		}
		t.lines = append(t.lines, b.String())
	}
}

// Lines returns the unstyled frame.
func (t *Terminal) Lines() []string { return t.lines }

// String returns the styled frame.
func (t *Terminal) String() string {
	return t.style.Render(strings.Join(t.lines, "\n"))
}

func glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
