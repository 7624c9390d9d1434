package render

import "ising/pkg/ising"

// fillSpinRGBA converts spins into RGBA pixels in buf, one pixel per site.
func fillSpinRGBA(buf []byte, g ising.Grid, p Palette) {
	g.Each(func(x, y int, up bool) {
		c := p.Color(up)
		base := g.Index(x, y) * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	})
}
