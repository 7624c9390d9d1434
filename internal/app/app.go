//go:build ebiten

package app

import (
	"time"

	"ising/internal/logging"
	"ising/internal/render"
	"ising/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures the window.
type Options struct {
	Scale    int
	HUDWidth int
	Palette  render.Palette
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	palette  render.Palette
	scale    int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(s *Session, opts Options) *Game {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	g := &Game{
		session:  s,
		painter:  render.NewGridPainter(s.Lattice().Size()),
		palette:  opts.Palette,
		scale:    opts.Scale,
		hudWidth: opts.HUDWidth,
	}
	g.hud = ui.NewHUD(opts.HUDWidth, g.adjust)
	return g
}

func (g *Game) adjust(direction int) {
	if err := g.session.AdjustCoupling(float64(direction) * CouplingStep); err != nil {
		logging.Logger().Warn("coupling not changed", "err", err)
	}
}

// Update handles per-frame input and advances the lattice.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.adjust(-1)
	}

	g.hud.Update(g.viewSize(), g.session.Parameters())
	g.session.Tick(time.Now())
	return nil
}

func (g *Game) reseed(seed int64) {
	if err := g.session.Reseed(seed); err != nil {
		logging.Logger().Warn("reseed failed", "seed", seed, "err", err)
	}
}

// Draw renders the lattice and the HUD to its right.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Lattice().Grid(), g.palette, g.scale)
	g.hud.Draw(screen, g.viewSize(), g.viewSize())
}

func (g *Game) viewSize() int { return g.session.Lattice().Size() * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewSize() + g.hudWidth, g.viewSize()
}
