package main

import (
	"alphalab/api"
	"alphalab/cmd"
	"alphalab/internal/domain"
	"alphalab/internal/logger"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	panelCsv   string
)

var rootCmd = &cobra.Command{
	Use:   "alphalab",
	Short: "Momentum alpha research pipeline",
	Long: `alphalab builds momentum alphas from an asset panel, submits them to the
portfolio optimizer and evaluates the weights that come back.

  alphalab alphas     write the alpha artifact
  alphalab submit     send a backtest job to the optimizer
  alphalab evaluate   summarize realized performance of the weights
  alphalab serve      run the http api`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to pipeline yaml config, defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&panelCsv, "panel-csv", "", "Read the asset panel from this csv instead of postgres")

	rootCmd.AddCommand(alphasCmd, evaluateCmd, submitCmd, serveCmd)
}

// withHandler wires dependencies and gives the command a context carrying
// the logger and a profile
func withHandler(run func(ctx context.Context, c *cobra.Command, handler *api.ApiHandler) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies(configPath, panelCsv)
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		profile, endProfile := domain.NewProfile()
		ctx := logger.NewContext(c.Context(), logger.New())
		ctx = domain.NewCtxWithProfile(ctx, profile)
		span, endSpan := profile.StartNewSpan(c.Name())

		err = run(domain.NewCtxWithSubProfile(ctx, span), c, handler)
		endSpan()
		endProfile()
		if bytes, jsonErr := profile.ToJsonBytes(); jsonErr == nil {
			logger.FromContext(ctx).Debugw("profile", "spans", string(bytes))
		}
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
