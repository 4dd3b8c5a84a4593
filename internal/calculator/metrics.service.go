package calculator

import (
	"alphalab/internal/domain"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// CumulativeReturns accumulates 100 * log1p(return) in date order, so
// the series reads as cumulative log return in percent
func CumulativeReturns(returns []domain.PortfolioReturn) ([]domain.CumulativeReturn, error) {
	sorted := make([]domain.PortfolioReturn, len(returns))
	copy(sorted, returns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make([]domain.CumulativeReturn, len(sorted))
	running := 0.0
	for i, r := range sorted {
		if r.Return <= -1 {
			return nil, domain.DegenerateStatisticsError{
				Err: fmt.Errorf("portfolio return of %f on %s wipes out the portfolio, log return is undefined", r.Return, r.Date.Format(time.DateOnly)),
			}
		}
		running += math.Log1p(r.Return) * 100
		out[i] = domain.CumulativeReturn{
			Date:             r.Date,
			CumulativeReturn: running,
		}
	}

	return out, nil
}

// SummarizePerformance annualizes the per-period returns. mean is scaled
// by 252 and the sample stdev by sqrt(252), both expressed in percent
func SummarizePerformance(returns []domain.PortfolioReturn) (*domain.PerformanceSummary, error) {
	if len(returns) == 0 {
		return nil, domain.MissingDataError{Err: fmt.Errorf("cannot summarize performance of 0 periods")}
	}
	if len(returns) < 2 {
		return nil, domain.DegenerateStatisticsError{
			Err: fmt.Errorf("cannot calculate volatility of %d period(s)", len(returns)),
		}
	}

	dataset := make([]float64, len(returns))
	for i, r := range returns {
		dataset[i] = r.Return
	}

	mean, err := stats.Mean(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean return: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	if !hasDispersion(dataset, mean, stdev) {
		return nil, domain.DegenerateStatisticsError{Err: fmt.Errorf("returns have 0 volatility, sharpe is undefined")}
	}

	annualizedReturn := mean * domain.TradingDaysPerYear * 100
	annualizedStdev := stdev * math.Sqrt(domain.TradingDaysPerYear) * 100

	return &domain.PerformanceSummary{
		MeanReturn: annualizedReturn,
		Volatility: annualizedStdev,
		Sharpe:     annualizedReturn / annualizedStdev,
	}, nil
}
