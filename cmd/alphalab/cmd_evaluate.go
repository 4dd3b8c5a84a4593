package main

import (
	"alphalab/api"
	"alphalab/internal/util"
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var evaluateFlags struct {
	start, end string
	signal     string
	gamma      int
	weights    string
	chartData  string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate realized performance of optimizer weights",
	Long: `Join the optimizer's weights with next-period returns, write the cumulative
log return series and print annualized mean, volatility and Sharpe.

Examples:
  alphalab evaluate --panel-csv data/panel.csv --gamma 50
  alphalab evaluate --weights 'weights/momentum/50/*.csv' --chart-data out/chart.csv`,
	RunE: withHandler(runEvaluate),
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.start, "start", "", "First date of the returns (YYYY-MM-DD)")
	f.StringVar(&evaluateFlags.end, "end", "", "Last date of the returns (YYYY-MM-DD)")
	f.StringVar(&evaluateFlags.signal, "signal", "", "Signal name the weights were built from")
	f.IntVar(&evaluateFlags.gamma, "gamma", 0, "Risk aversion the weights were built with")
	f.StringVar(&evaluateFlags.weights, "weights", "", "Glob of weight csv files")
	f.StringVar(&evaluateFlags.chartData, "chart-data", "", "Where to write the return series")
}

func runEvaluate(ctx context.Context, c *cobra.Command, handler *api.ApiHandler) error {
	cfg := handler.Config.Evaluation
	var err error
	if evaluateFlags.start != "" {
		if cfg.Start, err = util.ParseDate(evaluateFlags.start); err != nil {
			return err
		}
	}
	if evaluateFlags.end != "" {
		if cfg.End, err = util.ParseDate(evaluateFlags.end); err != nil {
			return err
		}
	}
	if evaluateFlags.signal != "" {
		cfg.SignalName = evaluateFlags.signal
	}
	if c.Flags().Changed("gamma") {
		cfg.Gamma = evaluateFlags.gamma
	}
	if evaluateFlags.weights != "" {
		cfg.WeightsGlob = evaluateFlags.weights
	}
	if evaluateFlags.chartData != "" {
		cfg.ChartDataPath = evaluateFlags.chartData
	}

	result, err := handler.EvaluationService.Evaluate(ctx, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "periods\t%d\n", len(result.PortfolioReturns))
	if result.Summary != nil {
		summary := result.Summary.Round(2)
		fmt.Fprintf(w, "mean return (%%)\t%.2f\n", summary.MeanReturn)
		fmt.Fprintf(w, "volatility (%%)\t%.2f\n", summary.Volatility)
		fmt.Fprintf(w, "sharpe\t%.2f\n", summary.Sharpe)
	} else {
		fmt.Fprintf(w, "sharpe\tn/a (%v)\n", result.SummaryErr)
	}
	fmt.Fprintf(w, "chart data\t%s\n", result.ChartDataPath)
	return w.Flush()
}
