package calculator

import (
	"alphalab/internal/domain"
	"alphalab/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_BuildForwardReturns(t *testing.T) {
	d1, d2, d3 := util.NewDate(2022, 5, 2), util.NewDate(2022, 5, 3), util.NewDate(2022, 5, 4)
	panel := []domain.AssetObservation{
		{Date: d3, AssetID: "AAA", Return: domain.FloatPointer(0.03)},
		{Date: d1, AssetID: "AAA", Return: domain.FloatPointer(0.01)},
		{Date: d2, AssetID: "AAA", Return: domain.FloatPointer(0.02)},
		{Date: d1, AssetID: "BBB", Return: domain.FloatPointer(-0.01)},
		{Date: d2, AssetID: "BBB", Return: nil},
	}

	out, err := BuildForwardReturns(panel, 2)
	require.NoError(t, err)
	require.Equal(
		t,
		"",
		cmp.Diff(
			[]domain.ForwardReturn{
				{Date: d1, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.02)},
				{Date: d1, AssetID: "BBB", ForwardReturn: nil},
				{Date: d2, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.03)},
				{Date: d2, AssetID: "BBB", ForwardReturn: nil},
				{Date: d3, AssetID: "AAA", ForwardReturn: nil},
			},
			out,
		),
	)
}

func Test_AggregatePortfolioReturns(t *testing.T) {
	d1, d2, d3 := util.NewDate(2022, 5, 2), util.NewDate(2022, 5, 3), util.NewDate(2022, 5, 4)

	t.Run("weighted sum of forward returns", func(t *testing.T) {
		weights := []domain.Weight{
			{Date: d1, AssetID: "AAA", Weight: 0.5},
			{Date: d1, AssetID: "BBB", Weight: 0.3},
			{Date: d1, AssetID: "CCC", Weight: 0.2},
		}
		forwardReturns := []domain.ForwardReturn{
			{Date: d1, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.01)},
			{Date: d1, AssetID: "BBB", ForwardReturn: domain.FloatPointer(-0.02)},
			{Date: d1, AssetID: "CCC", ForwardReturn: domain.FloatPointer(0.03)},
		}

		out := AggregatePortfolioReturns(weights, forwardReturns)
		require.Len(t, out, 1)
		require.Equal(t, d1, out[0].Date)
		require.InDelta(t, 0.005, out[0].Return, 1e-15)
	})

	t.Run("unmatched weights contribute zero", func(t *testing.T) {
		weights := []domain.Weight{
			{Date: d1, AssetID: "AAA", Weight: 0.5},
			{Date: d1, AssetID: "GONE", Weight: 0.5},
			{Date: d1, AssetID: "LAST", Weight: 0.5},
		}
		forwardReturns := []domain.ForwardReturn{
			{Date: d1, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.02)},
			{Date: d1, AssetID: "LAST", ForwardReturn: nil},
		}

		out := AggregatePortfolioReturns(weights, forwardReturns)
		require.Len(t, out, 1)
		require.InDelta(t, 0.01, out[0].Return, 1e-15)
	})

	t.Run("dates without any matched forward return are absent", func(t *testing.T) {
		weights := []domain.Weight{
			{Date: d3, AssetID: "AAA", Weight: 1},
			{Date: d2, AssetID: "AAA", Weight: 1},
			{Date: d1, AssetID: "AAA", Weight: 1},
		}
		forwardReturns := []domain.ForwardReturn{
			{Date: d1, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.01)},
			{Date: d2, AssetID: "AAA", ForwardReturn: domain.FloatPointer(-0.01)},
			{Date: d3, AssetID: "AAA", ForwardReturn: nil},
		}

		out := AggregatePortfolioReturns(weights, forwardReturns)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.PortfolioReturn{
					{Date: d1, Return: 0.01},
					{Date: d2, Return: -0.01},
				},
				out,
			),
		)
	})

	t.Run("forward returns without weights are ignored", func(t *testing.T) {
		out := AggregatePortfolioReturns(
			[]domain.Weight{},
			[]domain.ForwardReturn{{Date: d1, AssetID: "AAA", ForwardReturn: domain.FloatPointer(0.01)}},
		)
		require.Empty(t, out)
	})
}
