//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ising/pkg/ising"
)

// GridPainter uploads spin grids into a single RGBA image, one pixel per site.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size×size lattice.
func NewGridPainter(size int) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit uploads g into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g ising.Grid, p Palette, scale int) {
	if g.Size() != gp.size {
		return
	}
	fillSpinRGBA(gp.buf, g, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
