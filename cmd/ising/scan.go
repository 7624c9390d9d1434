package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"ising/internal/sim"
	"ising/pkg/ising"
)

func newScanCmd(c *cli) *cobra.Command {
	sc := sim.ScanConfig{
		From:    0.2,
		To:      0.7,
		Points:  11,
		Warmup:  200,
		Measure: 200,
	}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "measure observables over a range of couplings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			sc.Size = c.cfg.Size
			sc.Seed = c.cfg.Seed
			points, err := sim.Scan(ctx, sc)
			if err != nil {
				return err
			}
			return printScan(cmd.OutOrStdout(), points)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&sc.From, "from", sc.From, "first coupling")
	f.Float64Var(&sc.To, "to", sc.To, "last coupling")
	f.IntVar(&sc.Points, "points", sc.Points, "number of couplings")
	f.IntVar(&sc.Warmup, "warmup", sc.Warmup, "equilibration sweeps per point")
	f.IntVar(&sc.Measure, "measure", sc.Measure, "measured sweeps per point")
	return cmd
}

func printScan(out io.Writer, points []sim.ScanPoint) error {
	w := newTable(out)
	fmt.Fprintln(w, "COUPLING\tT/J\t<|m|>\t<e>\tACCEPTANCE")
	data := make([]float64, len(points))
	for i, p := range points {
		fmt.Fprintf(w, "%.4f\t%.3f\t%.4f\t%.4f\t%.4f\n",
			p.Coupling, 1/p.Coupling, p.AbsMagnetization, p.Energy, p.Acceptance)
		data[i] = p.AbsMagnetization
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(fmt.Sprintf("<|m|> from βJ=%.3f to %.3f (critical %.4f)",
			points[0].Coupling, points[len(points)-1].Coupling, ising.CriticalCoupling)))
	_, err := fmt.Fprintf(out, "\n%s\n", graph)
	return err
}
