package cmd

import (
	"alphalab/api"
	"alphalab/internal/repository"
	"alphalab/internal/service"
	"alphalab/internal/util"
	"alphalab/pkg/backtester"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) error {
	if handler.Close == nil {
		return nil
	}
	return handler.Close()
}

// InitializeDependencies reads the panel from postgres when db secrets
// are present, otherwise from the configured csv file
func InitializeDependencies(configPath string, panelCsv string) (*api.ApiHandler, error) {
	cfg, err := util.LoadPipelineConfig(configPath)
	if err != nil {
		return nil, err
	}
	if panelCsv != "" {
		cfg.PanelCsv = panelCsv
	}
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	var (
		assetPanelRepository repository.AssetPanelRepository
		closeFn              = func() error { return nil }
	)
	if cfg.PanelCsv == "" && secrets.Db.IsSet() {
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		assetPanelRepository = repository.NewAssetPanelRepository(dbConn)
		closeFn = dbConn.Close
	} else if cfg.PanelCsv != "" {
		assetPanelRepository = repository.NewAssetPanelCsvRepository(cfg.PanelCsv)
	} else {
		return nil, fmt.Errorf("no asset panel source: set panelCsv or provide db secrets")
	}

	alphaService := service.NewAlphaService(
		assetPanelRepository,
		repository.NewAlphaRepository(),
	)
	evaluationService := service.NewEvaluationService(
		assetPanelRepository,
		repository.NewWeightRepository(),
		repository.NewReturnSeriesRepository(),
	)

	apiHandler := &api.ApiHandler{
		AlphaService:      alphaService,
		EvaluationService: evaluationService,
		BacktestClient:    backtester.NewClient(secrets.Backtester.Endpoint, secrets.Backtester.ApiKey),
		Config:            *cfg,
		Close:             closeFn,
	}

	return apiHandler, nil
}
