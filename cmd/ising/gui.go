//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ising/internal/app"
	"ising/internal/render"
)

const hudWidth = 240

func newGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open a window showing the lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			session, err := app.NewSession(c.lattice, cfg.Seed, cfg.Coupling, cfg.TPS)
			if err != nil {
				return err
			}
			game := app.New(session, app.Options{
				Scale:    cfg.Scale,
				HUDWidth: hudWidth,
				Palette:  render.DefaultPalette(),
			})

			side := cfg.Size * cfg.Scale
			ebiten.SetWindowTitle("ising")
			ebiten.SetWindowSize(side+hudWidth, side)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
