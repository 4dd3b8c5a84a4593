package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AssetObservation is one row of the panel. numeric fields are nil
// when the upstream value is missing
type AssetObservation struct {
	Date          time.Time
	AssetID       string
	Price         *float64
	Return        *float64
	SpecificRisk  *float64
	PredictedBeta *float64
}

type SignalObservation struct {
	AssetObservation
	Signal *float64
}

// FilteredObservation is a row of the tradable universe. nothing
// here can be missing, which is the whole point of the filter
type FilteredObservation struct {
	Date          time.Time
	AssetID       string
	Signal        float64
	SpecificRisk  float64
	PredictedBeta float64
}

type Score struct {
	Date          time.Time
	AssetID       string
	Score         float64
	SpecificRisk  float64
	PredictedBeta float64
}

type Alpha struct {
	Date          time.Time
	AssetID       string
	Alpha         float64
	PredictedBeta float64
}

type Weight struct {
	Date    time.Time
	AssetID string
	Weight  float64
}

type ForwardReturn struct {
	Date          time.Time
	AssetID       string
	ForwardReturn *float64
}

type PortfolioReturn struct {
	Date   time.Time
	Return float64
}

type CumulativeReturn struct {
	Date             time.Time
	CumulativeReturn float64
}

type PerformanceSummary struct {
	MeanReturn float64 `json:"meanReturn"`
	Volatility float64 `json:"volatility"`
	Sharpe     float64 `json:"sharpe"`
}

// Round is for display only, the pipeline never rounds intermediate values
func (s PerformanceSummary) Round(places int32) PerformanceSummary {
	round := func(f float64) float64 {
		return decimal.NewFromFloat(f).Round(places).InexactFloat64()
	}
	return PerformanceSummary{
		MeanReturn: round(s.MeanReturn),
		Volatility: round(s.Volatility),
		Sharpe:     round(s.Sharpe),
	}
}

// PanelKey identifies a row of any panel-shaped table
type PanelKey struct {
	Date    time.Time
	AssetID string
}

func NewPanelKey(date time.Time, assetID string) PanelKey {
	return PanelKey{
		Date:    date.UTC().Truncate(24 * time.Hour),
		AssetID: assetID,
	}
}

func panelLess(d1 time.Time, a1 string, d2 time.Time, a2 string) bool {
	if !d1.Equal(d2) {
		return d1.Before(d2)
	}
	return a1 < a2
}

// SortPanel returns a copy of the panel sorted by (date, asset_id)
func SortPanel(rows []AssetObservation) []AssetObservation {
	out := make([]AssetObservation, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return panelLess(out[i].Date, out[i].AssetID, out[j].Date, out[j].AssetID)
	})
	return out
}

func SortAlphas(alphas []Alpha) {
	sort.SliceStable(alphas, func(i, j int) bool {
		return panelLess(alphas[i].Date, alphas[i].AssetID, alphas[j].Date, alphas[j].AssetID)
	})
}

// AssetGroup holds the indices of one asset's rows in a sorted
// panel, oldest first
type AssetGroup struct {
	AssetID string
	Indices []int
}

// GroupByAsset buckets a (date, asset_id)-sorted table by asset. groups
// come back ordered by asset_id so callers iterate deterministically
func GroupByAsset[T any](rows []T, assetID func(T) string) []AssetGroup {
	byAsset := map[string][]int{}
	for i, row := range rows {
		id := assetID(row)
		byAsset[id] = append(byAsset[id], i)
	}

	groups := make([]AssetGroup, 0, len(byAsset))
	for id, indices := range byAsset {
		groups = append(groups, AssetGroup{
			AssetID: id,
			Indices: indices,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].AssetID < groups[j].AssetID
	})

	return groups
}

// DateGroup holds the indices of every row that shares a date
type DateGroup struct {
	Date    time.Time
	Indices []int
}

// GroupByDate buckets a table by date, oldest date first
func GroupByDate[T any](rows []T, date func(T) time.Time) []DateGroup {
	byDate := map[time.Time][]int{}
	for i, row := range rows {
		d := NewPanelKey(date(row), "").Date
		byDate[d] = append(byDate[d], i)
	}

	groups := make([]DateGroup, 0, len(byDate))
	for d, indices := range byDate {
		groups = append(groups, DateGroup{
			Date:    d,
			Indices: indices,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	return groups
}

func FloatPointer(f float64) *float64 {
	return &f
}
