package api

import (
	"alphalab/pkg/backtester"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type submitBacktestRequest struct {
	backtester.BacktestConfig
	// nil means dry run. a real submission has to be asked for
	DryRun *bool `json:"dryRun"`
}

func (m ApiHandler) submitBacktest(c *gin.Context) {
	requestBody := submitBacktestRequest{
		BacktestConfig: m.Config.Backtest,
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if err := requestBody.Validate(); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	dryRun := requestBody.DryRun == nil || *requestBody.DryRun

	submission, err := m.BacktestClient.Submit(c.Request.Context(), requestBody.BacktestConfig, dryRun)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to submit backtest: %w", err), c)
		return
	}

	c.JSON(200, submission)
}
