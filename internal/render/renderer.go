// Package render draws spin grids onto pixel and text surfaces.
package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"ising/pkg/ising"
)

// Renderer consumes a grid snapshot and draws it. The grid carries the
// lattice side length; cell size is the surface size divided by it.
type Renderer interface {
	Draw(grid ising.Grid)
}

// Palette maps spin states to colours.
type Palette struct {
	Up   color.RGBA
	Down color.RGBA
}

// DefaultPalette leaves up spins as a white background and fills down spins
// black.
func DefaultPalette() Palette {
	return Palette{
		Up:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Down: color.RGBA{A: 255},
	}
}

// Color returns the colour for a spin.
func (p Palette) Color(up bool) color.RGBA {
	if up {
		return p.Up
	}
	return p.Down
}

// SnapshotName numbers path by sweep: "out.png" becomes "out_000120.png".
func SnapshotName(path string, sweep int) string {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".png"
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return fmt.Sprintf("%s_%06d%s", base, sweep, ext)
}
