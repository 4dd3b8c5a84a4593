package service

import (
	"alphalab/internal/domain"
	"alphalab/internal/repository"
	mock_repository "alphalab/internal/repository/mocks"
	"alphalab/internal/util"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func panelRow(date string, assetID string, price, returnPct float64) domain.AssetObservation {
	return domain.AssetObservation{
		Date:          util.MustParseDate(date),
		AssetID:       assetID,
		Price:         domain.FloatPointer(price),
		Return:        domain.FloatPointer(returnPct),
		SpecificRisk:  domain.FloatPointer(20),
		PredictedBeta: domain.FloatPointer(1),
	}
}

func testAlphaConfig() domain.AlphaConfig {
	cfg := domain.DefaultAlphaConfig()
	cfg.Start = util.NewDate(2020, 1, 1)
	cfg.End = util.NewDate(2020, 1, 31)
	cfg.Window = 1
	cfg.Lag = 0
	cfg.Workers = 2
	return cfg
}

func Test_alphaServiceHandler_ComputeAlphas(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one alpha per eligible row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		panelRepository := mock_repository.NewMockAssetPanelRepository(ctrl)
		alphaRepository := mock_repository.NewMockAlphaRepository(ctrl)
		handler := NewAlphaService(panelRepository, alphaRepository)
		cfg := testAlphaConfig()

		panelRepository.EXPECT().List(gomock.Any(), repository.ListAssetPanelInput{
			Start:      cfg.Start,
			End:        cfg.End,
			InUniverse: true,
		}).Return([]domain.AssetObservation{
			panelRow("2020-01-02", "AAA", 10, 0),
			panelRow("2020-01-02", "BBB", 10, 0),
			panelRow("2020-01-02", "CCC", 10, 0),
			panelRow("2020-01-03", "AAA", 10, 1),
			panelRow("2020-01-03", "BBB", 10, 2),
			panelRow("2020-01-03", "CCC", 10, 3),
			panelRow("2020-01-06", "AAA", 10, 3),
			panelRow("2020-01-06", "BBB", 10, 1),
			panelRow("2020-01-06", "CCC", 10, 2),
		}, nil)
		alphaRepository.EXPECT().Write("momentum_alphas.csv", gomock.Len(6)).Return(nil)

		result, err := handler.ComputeAlphas(ctx, cfg)
		require.NoError(t, err)

		require.Equal(t, "momentum_alphas.csv", result.ArtifactPath)
		require.Equal(t, 9, result.NumObservations)
		// the first date has no previous price
		require.Equal(t, 6, result.NumEligible)
		require.Empty(t, result.SkippedDates)
		require.Len(t, result.Alphas, 6)

		byKey := map[domain.PanelKey]domain.Alpha{}
		for _, a := range result.Alphas {
			byKey[domain.NewPanelKey(a.Date, a.AssetID)] = a
		}
		require.Less(t, byKey[domain.NewPanelKey(util.NewDate(2020, 1, 3), "AAA")].Alpha, 0.0)
		require.Greater(t, byKey[domain.NewPanelKey(util.NewDate(2020, 1, 3), "CCC")].Alpha, 0.0)
		require.Greater(t, byKey[domain.NewPanelKey(util.NewDate(2020, 1, 6), "AAA")].Alpha, 0.0)
		require.Less(t, byKey[domain.NewPanelKey(util.NewDate(2020, 1, 6), "BBB")].Alpha, 0.0)
		require.Equal(t, 1.0, byKey[domain.NewPanelKey(util.NewDate(2020, 1, 6), "BBB")].PredictedBeta)
	})

	t.Run("flat cross section is skipped, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		panelRepository := mock_repository.NewMockAssetPanelRepository(ctrl)
		alphaRepository := mock_repository.NewMockAlphaRepository(ctrl)
		handler := NewAlphaService(panelRepository, alphaRepository)

		panelRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.AssetObservation{
			panelRow("2020-01-02", "AAA", 10, 0),
			panelRow("2020-01-02", "BBB", 10, 0),
			panelRow("2020-01-03", "AAA", 10, 1),
			panelRow("2020-01-03", "BBB", 10, 2),
			panelRow("2020-01-06", "AAA", 10, 1),
			panelRow("2020-01-06", "BBB", 10, 1),
		}, nil)
		alphaRepository.EXPECT().Write(gomock.Any(), gomock.Len(2)).Return(nil)

		result, err := handler.ComputeAlphas(ctx, testAlphaConfig())
		require.NoError(t, err)
		require.Len(t, result.SkippedDates, 1)
		require.Equal(t, util.NewDate(2020, 1, 6), result.SkippedDates[0].Date)
		require.True(t, errors.As(result.SkippedDates[0].Err, &domain.DegenerateStatisticsError{}))
	})

	t.Run("short history is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		panelRepository := mock_repository.NewMockAssetPanelRepository(ctrl)
		alphaRepository := mock_repository.NewMockAlphaRepository(ctrl)
		handler := NewAlphaService(panelRepository, alphaRepository)
		cfg := testAlphaConfig()
		cfg.Window = 2

		panelRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.AssetObservation{
			panelRow("2020-01-02", "AAA", 10, 0),
			panelRow("2020-01-02", "BBB", 10, 0),
			panelRow("2020-01-03", "AAA", 10, 1),
			panelRow("2020-01-03", "BBB", 10, 2),
			panelRow("2020-01-03", "CCC", 10, 5),
			panelRow("2020-01-06", "AAA", 10, 3),
			panelRow("2020-01-06", "BBB", 10, 1),
		}, nil)
		alphaRepository.EXPECT().Write(gomock.Any(), gomock.Len(4)).Return(nil)

		result, err := handler.ComputeAlphas(ctx, cfg)
		require.NoError(t, err)
		require.Len(t, result.InsufficientHistory, 1)
		require.Equal(t, "CCC", result.InsufficientHistory[0].AssetID)
	})

	t.Run("empty panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		panelRepository := mock_repository.NewMockAssetPanelRepository(ctrl)
		alphaRepository := mock_repository.NewMockAlphaRepository(ctrl)
		handler := NewAlphaService(panelRepository, alphaRepository)

		panelRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.AssetObservation{}, nil)

		_, err := handler.ComputeAlphas(ctx, testAlphaConfig())
		require.True(t, errors.As(err, &domain.MissingDataError{}))
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		panelRepository := mock_repository.NewMockAssetPanelRepository(ctrl)
		alphaRepository := mock_repository.NewMockAlphaRepository(ctrl)
		handler := NewAlphaService(panelRepository, alphaRepository)

		panelRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		profile, _ := domain.NewProfile()
		_, err := handler.ComputeAlphas(domain.NewCtxWithProfile(ctx, profile), testAlphaConfig())
		require.ErrorContains(t, err, "connection refused")
		require.Len(t, profile.Spans, 1)
		require.Equal(t, "load asset panel", profile.Spans[0].Name)
		require.NotNil(t, profile.Spans[0].Elapsed)
	})

	t.Run("invalid config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewAlphaService(
			mock_repository.NewMockAssetPanelRepository(ctrl),
			mock_repository.NewMockAlphaRepository(ctrl),
		)
		cfg := testAlphaConfig()
		cfg.Window = 0

		_, err := handler.ComputeAlphas(ctx, cfg)
		require.ErrorContains(t, err, "invalid alpha config")
	})
}
