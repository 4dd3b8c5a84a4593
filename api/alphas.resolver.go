package api

import (
	"alphalab/internal/domain"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type computeAlphasRequest struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	SignalName string   `json:"signalName"`
	Window     *int     `json:"window"`
	Lag        *int     `json:"lag"`
	MinPrice   *float64 `json:"minPrice"`
	IC         *float64 `json:"ic"`
	OutputPath string   `json:"outputPath"`
	// the artifact can be large, so it is only echoed back on request
	IncludeAlphas bool `json:"includeAlphas"`
}

type skippedDateResponse struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

type invalidReturnResponse struct {
	Date    string  `json:"date"`
	AssetID string  `json:"assetId"`
	Return  float64 `json:"return"`
}

type alphaResponse struct {
	Date          string  `json:"date"`
	AssetID       string  `json:"assetId"`
	Alpha         float64 `json:"alpha"`
	PredictedBeta float64 `json:"predictedBeta"`
}

type computeAlphasResponse struct {
	RunID                     string                  `json:"runId"`
	ArtifactPath              string                  `json:"artifactPath"`
	NumAlphas                 int                     `json:"numAlphas"`
	NumObservations           int                     `json:"numObservations"`
	NumEligible               int                     `json:"numEligible"`
	InsufficientHistoryAssets []string                `json:"insufficientHistoryAssets"`
	InvalidReturns            []invalidReturnResponse `json:"invalidReturns"`
	SkippedDates              []skippedDateResponse   `json:"skippedDates"`
	Alphas                    []alphaResponse         `json:"alphas,omitempty"`
}

func (req computeAlphasRequest) toConfig(defaults domain.AlphaConfig) (domain.AlphaConfig, error) {
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
	if req.Window != nil {
		cfg.Window = *req.Window
	}
	if req.Lag != nil {
		cfg.Lag = *req.Lag
	}
	if req.MinPrice != nil {
		cfg.MinPrice = *req.MinPrice
	}
	if req.IC != nil {
		cfg.IC = *req.IC
	}
	if req.OutputPath != "" {
		cfg.OutputPath = req.OutputPath
	}

	return cfg, cfg.Validate()
}

func (m ApiHandler) computeAlphas(c *gin.Context) {
	var requestBody computeAlphasRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	cfg, err := requestBody.toConfig(m.Config.Alpha)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	ctx, endSpan := newStageContext(c, "compute alphas")
	result, err := m.AlphaService.ComputeAlphas(ctx, cfg)
	endSpan()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute alphas: %w", err), c)
		return
	}

	out := computeAlphasResponse{
		RunID:                     result.RunID.String(),
		ArtifactPath:              result.ArtifactPath,
		NumAlphas:                 len(result.Alphas),
		NumObservations:           result.NumObservations,
		NumEligible:               result.NumEligible,
		InsufficientHistoryAssets: []string{},
		InvalidReturns:            []invalidReturnResponse{},
		SkippedDates:              []skippedDateResponse{},
	}
	for _, w := range result.InsufficientHistory {
		out.InsufficientHistoryAssets = append(out.InsufficientHistoryAssets, w.AssetID)
	}
	for _, r := range result.InvalidReturns {
		out.InvalidReturns = append(out.InvalidReturns, invalidReturnResponse{
			Date:    r.Date.Format(time.DateOnly),
			AssetID: r.AssetID,
			Return:  r.Return,
		})
	}
	for _, s := range result.SkippedDates {
		out.SkippedDates = append(out.SkippedDates, skippedDateResponse{
			Date:  s.Date.Format(time.DateOnly),
			Error: s.Err.Error(),
		})
	}
	if requestBody.IncludeAlphas {
		for _, a := range result.Alphas {
			out.Alphas = append(out.Alphas, alphaResponse{
				Date:          a.Date.Format(time.DateOnly),
				AssetID:       a.AssetID,
				Alpha:         a.Alpha,
				PredictedBeta: a.PredictedBeta,
			})
		}
	}

	c.JSON(200, out)
}
