package main

import (
	"alphalab/api"
	"alphalab/internal/util"
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var alphaFlags struct {
	start, end string
	signal     string
	window     int
	lag        int
	minPrice   float64
	ic         float64
	output     string
	workers    int
}

var alphasCmd = &cobra.Command{
	Use:   "alphas",
	Short: "Compute momentum alphas and write the artifact",
	Long: `Compute the lagged rolling momentum signal, keep the tradable universe,
standardize each date's cross section and write alpha = ic * score * specific risk.

Examples:
  alphalab alphas --panel-csv data/panel.csv
  alphalab alphas --start 2010-01-01 --window 120 --lag 5 --output out/alphas.csv`,
	RunE: withHandler(runAlphas),
}

func init() {
	f := alphasCmd.Flags()
	f.StringVar(&alphaFlags.start, "start", "", "First date of the panel (YYYY-MM-DD)")
	f.StringVar(&alphaFlags.end, "end", "", "Last date of the panel (YYYY-MM-DD)")
	f.StringVar(&alphaFlags.signal, "signal", "", "Signal name used for the artifact")
	f.IntVar(&alphaFlags.window, "window", 0, "Rolling window in periods")
	f.IntVar(&alphaFlags.lag, "lag", 0, "Signal lag in periods")
	f.Float64Var(&alphaFlags.minPrice, "min-price", 0, "Minimum previous-period price")
	f.Float64Var(&alphaFlags.ic, "ic", 0, "Information coefficient")
	f.StringVar(&alphaFlags.output, "output", "", "Artifact path")
	f.IntVar(&alphaFlags.workers, "workers", 0, "Per-asset and per-date parallelism")
}

func runAlphas(ctx context.Context, c *cobra.Command, handler *api.ApiHandler) error {
	cfg := handler.Config.Alpha
	f := c.Flags()
	var err error
	if alphaFlags.start != "" {
		if cfg.Start, err = util.ParseDate(alphaFlags.start); err != nil {
			return err
		}
	}
	if alphaFlags.end != "" {
		if cfg.End, err = util.ParseDate(alphaFlags.end); err != nil {
			return err
		}
	}
	if alphaFlags.signal != "" {
		cfg.SignalName = alphaFlags.signal
	}
	if f.Changed("window") {
		cfg.Window = alphaFlags.window
	}
	if f.Changed("lag") {
		cfg.Lag = alphaFlags.lag
	}
	if f.Changed("min-price") {
		cfg.MinPrice = alphaFlags.minPrice
	}
	if f.Changed("ic") {
		cfg.IC = alphaFlags.ic
	}
	if alphaFlags.output != "" {
		cfg.OutputPath = alphaFlags.output
	}
	if f.Changed("workers") {
		cfg.Workers = alphaFlags.workers
	}

	result, err := handler.AlphaService.ComputeAlphas(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d alphas to %s\n", len(result.Alphas), result.ArtifactPath)
	fmt.Printf("observations: %d, eligible: %d\n", result.NumObservations, result.NumEligible)
	if len(result.InsufficientHistory) > 0 {
		fmt.Printf("assets with insufficient history: %d\n", len(result.InsufficientHistory))
	}
	if len(result.InvalidReturns) > 0 {
		fmt.Printf("returns at or below -100%% excluded: %d\n", len(result.InvalidReturns))
	}
	if len(result.SkippedDates) > 0 {
		fmt.Printf("skipped dates: %d\n", len(result.SkippedDates))
	}
	return nil
}
