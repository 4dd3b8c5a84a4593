package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPerformanceSummary_Round(t *testing.T) {
	summary := PerformanceSummary{
		MeanReturn: 7.559999999,
		Volatility: 15.874507866,
		Sharpe:     0.476235,
	}
	require.Equal(
		t,
		"",
		cmp.Diff(
			PerformanceSummary{MeanReturn: 7.56, Volatility: 15.87, Sharpe: 0.48},
			summary.Round(2),
		),
	)
}

func TestGroupByAsset(t *testing.T) {
	d1 := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := []Weight{
		{Date: d1, AssetID: "BBB"},
		{Date: d1, AssetID: "AAA"},
		{Date: d1.AddDate(0, 0, 1), AssetID: "BBB"},
	}
	groups := GroupByAsset(rows, func(w Weight) string { return w.AssetID })
	require.Equal(
		t,
		"",
		cmp.Diff(
			[]AssetGroup{
				{AssetID: "AAA", Indices: []int{1}},
				{AssetID: "BBB", Indices: []int{0, 2}},
			},
			groups,
		),
	)
}

func TestNewPanelKey(t *testing.T) {
	ny := time.FixedZone("EST", -5*60*60)
	local := time.Date(2020, 1, 2, 0, 0, 0, 0, ny)
	require.Equal(t, NewPanelKey(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), "AAA"), NewPanelKey(local, "AAA"))
}
