//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"ising/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the parameter panel to the right of the lattice view.
type HUD struct {
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	control  controlLayout
	onAdjust func(direction int)
}

// NewHUD constructs a HUD of the given width. onAdjust is called with -1 or
// +1 when a coupling button is clicked. A non-positive width disables it.
func NewHUD(width int, onAdjust func(direction int)) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{width: width, onAdjust: onAdjust}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update caches the snapshot and handles button clicks. panelOffsetX is the
// screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int, snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = snap
	if h.onAdjust == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return
	}
	if dir := h.control.hit(mx-panelOffsetX, my); dir != 0 {
		h.onAdjust(dir)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.control = layoutControl(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Ising", face, panelPadding, y, titleColor)
	for _, line := range visibleLines(h.snapshot.Lines(), height) {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}

	text.Draw(h.panel, "Coupling", face, panelPadding, h.control.minusRect.Max.Y-6, textColor)
	h.drawButton(h.control.minusRect, "-")
	h.drawButton(h.control.plusRect, "+")

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, textColor)
}
