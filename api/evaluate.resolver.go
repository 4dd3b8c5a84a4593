package api

import (
	"alphalab/internal/domain"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const summaryDecimalPlaces = 4

type evaluateRequest struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	SignalName    string `json:"signalName"`
	Gamma         *int   `json:"gamma"`
	WeightsGlob   string `json:"weightsGlob"`
	ChartDataPath string `json:"chartDataPath"`
}

type returnPointResponse struct {
	Date             string  `json:"date"`
	Return           float64 `json:"return"`
	CumulativeReturn float64 `json:"cumulativeReturn"`
}

type evaluateResponse struct {
	RunID string `json:"runId"`
	// null when the series is too short or too flat to annualize
	Summary       *domain.PerformanceSummary `json:"summary"`
	SummaryError  *string                    `json:"summaryError"`
	ChartDataPath string                     `json:"chartDataPath"`
	Returns       []returnPointResponse      `json:"returns"`
}

func (req evaluateRequest) toConfig(defaults domain.EvaluationConfig) (domain.EvaluationConfig, error) {
	cfg := defaults
	var err error
	cfg.Start, err = parseDateOr(req.Start, defaults.Start)
	if err != nil {
		return cfg, err
	}
	cfg.End, err = parseDateOr(req.End, defaults.End)
	if err != nil {
		return cfg, err
	}
	if req.SignalName != "" {
		cfg.SignalName = req.SignalName
	}
	if req.Gamma != nil {
		cfg.Gamma = *req.Gamma
	}
	if req.WeightsGlob != "" {
		cfg.WeightsGlob = req.WeightsGlob
	}
	if req.ChartDataPath != "" {
		cfg.ChartDataPath = req.ChartDataPath
	}

	return cfg, cfg.Validate()
}

func (m ApiHandler) evaluate(c *gin.Context) {
	var requestBody evaluateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	cfg, err := requestBody.toConfig(m.Config.Evaluation)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	ctx, endSpan := newStageContext(c, "evaluate")
	result, err := m.EvaluationService.Evaluate(ctx, cfg)
	endSpan()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to evaluate portfolio: %w", err), c)
		return
	}

	out := evaluateResponse{
		RunID:         result.RunID.String(),
		ChartDataPath: result.ChartDataPath,
		Returns:       make([]returnPointResponse, len(result.PortfolioReturns)),
	}
	if result.Summary != nil {
		summary := result.Summary.Round(summaryDecimalPlaces)
		out.Summary = &summary
	}
	if result.SummaryErr != nil {
		msg := result.SummaryErr.Error()
		out.SummaryError = &msg
	}
	// both series are sorted by date and have one entry per period
	for i, r := range result.PortfolioReturns {
		out.Returns[i] = returnPointResponse{
			Date:             r.Date.Format(time.DateOnly),
			Return:           r.Return,
			CumulativeReturn: result.CumulativeReturns[i].CumulativeReturn,
		}
	}

	c.JSON(200, out)
}
