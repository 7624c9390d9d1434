//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("the gui command requires building with -tags ebiten")

func newGUICmd(*cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open a window showing the lattice (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoGUI
		},
	}
}
