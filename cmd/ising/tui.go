package main

import (
	"github.com/spf13/cobra"

	"ising/internal/tui"
	"ising/pkg/ising"
)

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "watch the lattice evolve in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := func(seed int64) (*ising.Lattice, error) {
				return c.lattice(seed, c.cfg.Coupling)
			}
			return tui.Run(factory, c.cfg.Seed, c.cfg.TPS)
		},
	}
}
