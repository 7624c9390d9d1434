package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"ising/pkg/ising"
)

// PNG rasterises grids onto a square software canvas.
type PNG struct {
	dc      *gg.Context
	pixels  int
	palette Palette
	err     error
}

// NewPNG allocates a pixels×pixels canvas.
func NewPNG(pixels int, p Palette) *PNG {
	if pixels <= 0 {
		pixels = 1
	}
	return &PNG{dc: gg.NewContext(pixels, pixels), pixels: pixels, palette: p}
}

// Draw clears the canvas to the up colour and fills one square per down spin.
func (r *PNG) Draw(g ising.Grid) {
	dc := r.dc
	dc.ClearWithColor(gg.FromColor(r.palette.Up))
	if g.Size() == 0 {
		return
	}
	cell := float64(r.pixels) / float64(g.Size())
	dc.SetColor(r.palette.Down)
	g.Each(func(x, y int, up bool) {
		if !up {
			dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
		}
	})
	r.err = dc.Fill()
}

// Err returns the rasteriser error of the last Draw.
func (r *PNG) Err() error { return r.err }

// Image returns the canvas contents.
func (r *PNG) Image() image.Image { return r.dc.Image() }

// SavePNG writes the canvas to path.
func (r *PNG) SavePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.SavePNG(path)
}

// EncodePNG writes the canvas to w.
func (r *PNG) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// Close releases the canvas.
func (r *PNG) Close() error { return r.dc.Close() }
