package main

import (
	"alphalab/api"
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var submitFlags struct {
	dataPath string
	gamma    float64
	email    string
	execute  bool
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a backtest job to the portfolio optimizer",
	Long: `Validate the backtest config and send it to the execution service.
Without --execute the request is only printed.

Examples:
  alphalab submit --config pipeline.yaml
  alphalab submit --gamma 20 --execute`,
	RunE: withHandler(runSubmit),
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFlags.dataPath, "data-path", "", "Alpha artifact the optimizer reads")
	f.Float64Var(&submitFlags.gamma, "gamma", 0, "Risk aversion")
	f.StringVar(&submitFlags.email, "email", "", "Address for job notifications")
	f.BoolVar(&submitFlags.execute, "execute", false, "Actually submit instead of a dry run")
}

func runSubmit(ctx context.Context, c *cobra.Command, handler *api.ApiHandler) error {
	cfg := handler.Config.Backtest
	if submitFlags.dataPath != "" {
		cfg.DataPath = submitFlags.dataPath
	}
	if c.Flags().Changed("gamma") {
		cfg.Gamma = submitFlags.gamma
	}
	if submitFlags.email != "" {
		cfg.Email = submitFlags.email
	}

	submission, err := handler.BacktestClient.Submit(ctx, cfg, !submitFlags.execute)
	if err != nil {
		return err
	}

	if submission.DryRun {
		fmt.Println(submission.Payload)
		return nil
	}
	fmt.Printf("submitted %s, jobs: %v\n", submission.SubmissionID, submission.JobIDs)
	return nil
}
