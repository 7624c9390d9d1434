// Command ising runs the two-dimensional Ising model headless, as a coupling
// scan, in the terminal or in a window.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ising/internal/config"
	"ising/internal/logging"
	"ising/pkg/ising"
)

// cli carries the state shared by every subcommand.
type cli struct {
	cfg *config.Config

	configPath string
	preset     string
	sets       []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError logs err through the shared logger, falling back to a text
// handler on w when the command failed before logging was configured.
func reportError(w io.Writer, err error) {
	logger := logging.Logger()
	if !logger.Enabled(context.Background(), slog.LevelError) {
		logger = slog.New(slog.NewTextHandler(w, nil))
	}
	logger.Error("command failed", "err", err)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	flagCfg := config.DefaultConfig()

	root := &cobra.Command{
		Use:           "ising",
		Short:         "Metropolis Monte Carlo for the 2D Ising model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file path (yaml)")
	pf.StringVar(&c.preset, "preset", "", "start from a named preset")
	pf.StringArrayVar(&c.sets, "set", nil, "override a config key (key=value, repeatable)")
	pf.Float64("temperature", 0, "temperature T/J; sets coupling to 1/T")
	flagCfg.Bind(pf)

	root.AddCommand(
		newRunCmd(c),
		newScanCmd(c),
		newTUICmd(c),
		newGUICmd(c),
		newPresetsCmd(),
		newInitConfigCmd(c),
	)
	return root
}

// setup resolves the configuration (defaults, preset, file, flags, --set) and
// installs the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(c.configPath, c.preset)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(c.sets); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	c.cfg = cfg
	return nil
}

// lattice builds a lattice with the configured size.
func (c *cli) lattice(seed int64, coupling float64) (*ising.Lattice, error) {
	return c.cfg.LatticeWith(seed, coupling)
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "NAME\tCOUPLING\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.4f\t%s\n", name, p.Coupling, p.Description)
			}
			return w.Flush()
		},
	}
}

func newInitConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], c.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
