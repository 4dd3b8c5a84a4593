package calculator

import (
	"alphalab/internal/domain"
	"fmt"
	"math"
	"sort"
)

type BuildSignalsInput struct {
	Panel   []domain.AssetObservation
	Window  int
	Lag     int
	Workers int
}

type BuildSignalsResult struct {
	// Observations are sorted by (date, asset_id)
	Observations []domain.SignalObservation
	// Warnings lists the assets whose signal is entirely missing
	Warnings []domain.InsufficientHistoryError
	// InvalidReturns lists returns at or below -100%, sorted by (date, asset_id)
	InvalidReturns []domain.InvalidReturnError
}

// BuildSignals computes the momentum signal for every row of the panel:
// the trailing Window-period sum of log1p(return), pushed Lag periods
// forward within each asset's own series. the value attached to date t
// therefore only depends on returns up to t-Lag
func BuildSignals(in BuildSignalsInput) (*BuildSignalsResult, error) {
	if in.Window < 1 {
		return nil, fmt.Errorf("rolling window must be positive, got %d", in.Window)
	}
	if in.Lag < 0 {
		return nil, fmt.Errorf("signal lag cannot be negative, got %d", in.Lag)
	}

	panel := domain.SortPanel(in.Panel)
	out := make([]domain.SignalObservation, len(panel))
	for i, row := range panel {
		out[i] = domain.SignalObservation{AssetObservation: row}
	}

	groups := domain.GroupByAsset(panel, func(o domain.AssetObservation) string {
		return o.AssetID
	})
	required := in.Window + in.Lag
	shortHistory := make([]*domain.InsufficientHistoryError, len(groups))
	invalidByGroup := make([][]domain.InvalidReturnError, len(groups))

	err := forEachGroup(len(groups), in.Workers, func(g int) error {
		group := groups[g]
		if len(group.Indices) < required {
			shortHistory[g] = &domain.InsufficientHistoryError{
				AssetID:      group.AssetID,
				Observations: len(group.Indices),
				Required:     required,
			}
			return nil
		}

		logReturns := make([]*float64, len(group.Indices))
		for k, idx := range group.Indices {
			logReturns[k] = log1p(panel[idx].Return)
			if logReturns[k] == nil && panel[idx].Return != nil {
				invalidByGroup[g] = append(invalidByGroup[g], domain.InvalidReturnError{
					AssetID: group.AssetID,
					Date:    panel[idx].Date,
					Return:  *panel[idx].Return,
				})
			}
		}
		sums := rollingSum(logReturns, in.Window)
		for k, idx := range group.Indices {
			if k-in.Lag >= 0 {
				out[idx].Signal = sums[k-in.Lag]
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build signals: %w", err)
	}

	warnings := []domain.InsufficientHistoryError{}
	for _, w := range shortHistory {
		if w != nil {
			warnings = append(warnings, *w)
		}
	}

	invalidReturns := []domain.InvalidReturnError{}
	for _, invalid := range invalidByGroup {
		invalidReturns = append(invalidReturns, invalid...)
	}
	sort.Slice(invalidReturns, func(i, j int) bool {
		a, b := invalidReturns[i], invalidReturns[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.AssetID < b.AssetID
	})

	return &BuildSignalsResult{
		Observations:   out,
		Warnings:       warnings,
		InvalidReturns: invalidReturns,
	}, nil
}

// log1p treats a return at or below -100% as missing, since the
// log is not finite and would poison every window it lands in
func log1p(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := math.Log1p(*r)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// rollingSum returns the trailing sum over `window` values. the first
// window-1 positions, and any window that includes a missing value,
// are missing
func rollingSum(values []*float64, window int) []*float64 {
	out := make([]*float64, len(values))
	sum := 0.0
	numMissing := 0
	for i, v := range values {
		if v == nil {
			numMissing++
		} else {
			sum += *v
		}
		if i >= window {
			dropped := values[i-window]
			if dropped == nil {
				numMissing--
			} else {
				sum -= *dropped
			}
		}
		if i >= window-1 && numMissing == 0 {
			s := sum
			out[i] = &s
		}
	}
	return out
}
