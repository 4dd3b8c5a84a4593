package service

import (
	"alphalab/internal/calculator"
	"alphalab/internal/domain"
	"alphalab/internal/logger"
	"alphalab/internal/repository"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AlphaService builds the alpha artifact consumed by the optimizer
type AlphaService interface {
	ComputeAlphas(ctx context.Context, cfg domain.AlphaConfig) (*ComputeAlphasResult, error)
}

type ComputeAlphasResult struct {
	RunID        uuid.UUID
	ArtifactPath string
	Alphas       []domain.Alpha
	// panel rows loaded, and rows left after the universe filter
	NumObservations     int
	NumEligible         int
	InsufficientHistory []domain.InsufficientHistoryError
	InvalidReturns      []domain.InvalidReturnError
	SkippedDates        []calculator.SkippedDate
}

type alphaServiceHandler struct {
	AssetPanelRepository repository.AssetPanelRepository
	AlphaRepository      repository.AlphaRepository
}

func NewAlphaService(
	assetPanelRepository repository.AssetPanelRepository,
	alphaRepository repository.AlphaRepository,
) AlphaService {
	return alphaServiceHandler{
		AssetPanelRepository: assetPanelRepository,
		AlphaRepository:      alphaRepository,
	}
}

// ComputeAlphas loads the whole panel, runs every stage in memory and
// only then writes the artifact
func (h alphaServiceHandler) ComputeAlphas(ctx context.Context, cfg domain.AlphaConfig) (*ComputeAlphasResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid alpha config: %w", err)
	}
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runId", runID, "signal", cfg.SignalName)
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("load asset panel")
	panel, err := h.AssetPanelRepository.List(ctx, repository.ListAssetPanelInput{
		Start:      cfg.Start,
		End:        cfg.End,
		InUniverse: true,
	})
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load asset panel: %w", err)
	}
	if len(panel) == 0 {
		return nil, domain.MissingDataError{Err: fmt.Errorf("asset panel is empty for the requested range")}
	}
	log.Infow("loaded asset panel", "numObservations", len(panel))

	_, endSpan = profile.StartNewSpan("build signals")
	signals, err := calculator.BuildSignals(calculator.BuildSignalsInput{
		Panel:   calculator.ToFractional(panel),
		Window:  cfg.Window,
		Lag:     cfg.Lag,
		Workers: cfg.Workers,
	})
	endSpan()
	if err != nil {
		return nil, err
	}
	if len(signals.Warnings) > 0 {
		log.Infow("assets with insufficient history", "numAssets", len(signals.Warnings))
	}
	for _, invalid := range signals.InvalidReturns {
		log.Warnw("excluding return from signal", "assetId", invalid.AssetID, "date", invalid.Date, "return", invalid.Return)
	}

	_, endSpan = profile.StartNewSpan("filter universe")
	filtered := calculator.FilterUniverse(signals.Observations, cfg.MinPrice)
	endSpan()
	log.Infow("filtered universe", "numEligible", len(filtered))

	_, endSpan = profile.StartNewSpan("score cross sections")
	scores, err := calculator.ScoreCrossSection(filtered, cfg.Workers)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to score signals: %w", err)
	}
	for _, skipped := range scores.SkippedDates {
		log.Warnw("skipping date", "date", skipped.Date, "error", skipped.Err)
	}

	alphas := calculator.ComposeAlphas(scores.Scores, cfg.IC)
	if len(alphas) == 0 {
		return nil, domain.MissingDataError{Err: fmt.Errorf("no alphas produced, every date was skipped")}
	}

	_, endSpan = profile.StartNewSpan("write alphas")
	path := cfg.ArtifactPath()
	err = h.AlphaRepository.Write(path, alphas)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to write alphas: %w", err)
	}
	log.Infow("wrote alphas", "path", path, "numAlphas", len(alphas))

	return &ComputeAlphasResult{
		RunID:               runID,
		ArtifactPath:        path,
		Alphas:              alphas,
		NumObservations:     len(panel),
		NumEligible:         len(filtered),
		InsufficientHistory: signals.Warnings,
		InvalidReturns:      signals.InvalidReturns,
		SkippedDates:        scores.SkippedDates,
	}, nil
}
