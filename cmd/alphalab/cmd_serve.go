package main

import (
	"alphalab/cmd"
	"alphalab/internal/logger"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipelines over http",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies(configPath, panelCsv)
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		logger.Info("starting api on port %d", servePort)
		return handler.StartApi(servePort)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3009, "Port to listen on")
}
