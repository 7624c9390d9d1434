// Package ui draws the side panel of the GUI: the parameter readout and the
// coupling buttons.
package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	controlsHeight = 36
)

// controlLayout positions the coupling row at the bottom of the panel.
type controlLayout struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func layoutControl(width, height int) controlLayout {
	top := height - panelPadding - controlsHeight
	buttonY := top + (controlsHeight-buttonSize)/2
	plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
	return controlLayout{top: top, minusRect: minus, plusRect: plus}
}

// hit reports -1 or +1 when (x, y) lies on a button, 0 otherwise.
func (c controlLayout) hit(x, y int) int {
	switch {
	case pointInRect(x, y, c.minusRect):
		return -1
	case pointInRect(x, y, c.plusRect):
		return 1
	default:
		return 0
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// visibleLines returns the prefix of lines that fits above the control row.
func visibleLines(lines []string, height int) []string {
	room := (layoutControl(0, height).top - panelPadding - headerBaseline) / lineHeight
	if room < 0 {
		room = 0
	}
	if len(lines) > room {
		return lines[:room]
	}
	return lines
}
