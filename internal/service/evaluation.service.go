package service

import (
	"alphalab/internal/calculator"
	"alphalab/internal/domain"
	"alphalab/internal/logger"
	"alphalab/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EvaluationService measures how the optimizer's weights actually did
type EvaluationService interface {
	Evaluate(ctx context.Context, cfg domain.EvaluationConfig) (*EvaluateResult, error)
}

type EvaluateResult struct {
	RunID             uuid.UUID
	PortfolioReturns  []domain.PortfolioReturn
	CumulativeReturns []domain.CumulativeReturn
	// Summary is nil when the returns cannot be annualized, for example a
	// single period or a flat series. SummaryErr then says why. the
	// return series and chart data are still produced
	Summary       *domain.PerformanceSummary
	SummaryErr    error
	ChartDataPath string
}

type evaluationServiceHandler struct {
	AssetPanelRepository   repository.AssetPanelRepository
	WeightRepository       repository.WeightRepository
	ReturnSeriesRepository repository.ReturnSeriesRepository
}

func NewEvaluationService(
	assetPanelRepository repository.AssetPanelRepository,
	weightRepository repository.WeightRepository,
	returnSeriesRepository repository.ReturnSeriesRepository,
) EvaluationService {
	return evaluationServiceHandler{
		AssetPanelRepository:   assetPanelRepository,
		WeightRepository:       weightRepository,
		ReturnSeriesRepository: returnSeriesRepository,
	}
}

func (h evaluationServiceHandler) Evaluate(ctx context.Context, cfg domain.EvaluationConfig) (*EvaluateResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluation config: %w", err)
	}
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runId", runID, "signal", cfg.SignalName, "gamma", cfg.Gamma)
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("load weights")
	weights, err := h.WeightRepository.List(cfg.WeightsPattern())
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}

	_, endSpan = profile.StartNewSpan("load returns")
	panel, err := h.AssetPanelRepository.List(ctx, repository.ListAssetPanelInput{
		Start:      cfg.Start,
		End:        cfg.End,
		InUniverse: true,
	})
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load asset panel: %w", err)
	}
	log.Infow("loaded inputs", "numWeights", len(weights), "numObservations", len(panel))

	_, endSpan = profile.StartNewSpan("compute portfolio returns")
	forwardReturns, err := calculator.BuildForwardReturns(calculator.ToFractional(panel), cfg.Workers)
	if err != nil {
		endSpan()
		return nil, err
	}
	portfolioReturns := calculator.AggregatePortfolioReturns(weights, forwardReturns)
	if len(portfolioReturns) == 0 {
		endSpan()
		return nil, domain.MissingDataError{Err: fmt.Errorf("none of the %d weights matched a forward return", len(weights))}
	}
	cumulativeReturns, err := calculator.CumulativeReturns(portfolioReturns)
	if err != nil {
		endSpan()
		return nil, fmt.Errorf("failed to compute cumulative returns: %w", err)
	}
	summary, summaryErr := calculator.SummarizePerformance(portfolioReturns)
	endSpan()
	if summaryErr != nil {
		if !errors.As(summaryErr, &domain.DegenerateStatisticsError{}) {
			return nil, fmt.Errorf("failed to summarize performance: %w", summaryErr)
		}
		log.Warnw("performance summary is undefined", "numPeriods", len(portfolioReturns), "error", summaryErr)
	}

	_, endSpan = profile.StartNewSpan("write chart data")
	path := cfg.ChartPath()
	err = h.ReturnSeriesRepository.Write(path, portfolioReturns, cumulativeReturns)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to write chart data: %w", err)
	}
	if summary != nil {
		log.Infow(
			"evaluated portfolio",
			"numPeriods", len(portfolioReturns),
			"meanReturn", summary.MeanReturn,
			"volatility", summary.Volatility,
			"sharpe", summary.Sharpe,
		)
	}

	return &EvaluateResult{
		RunID:             runID,
		PortfolioReturns:  portfolioReturns,
		CumulativeReturns: cumulativeReturns,
		Summary:           summary,
		SummaryErr:        summaryErr,
		ChartDataPath:     path,
	}, nil
}
