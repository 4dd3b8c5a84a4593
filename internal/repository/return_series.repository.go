package repository

import (
	"alphalab/internal/domain"
	"fmt"
	"time"
)

type returnSeriesCsvRow struct {
	Date             string  `csv:"date"`
	Return           float64 `csv:"return"`
	CumulativeReturn float64 `csv:"cumulative_return"`
}

// ReturnSeriesRepository writes the data behind the cumulative return chart
type ReturnSeriesRepository interface {
	Write(path string, returns []domain.PortfolioReturn, cumulative []domain.CumulativeReturn) error
}

type returnSeriesRepositoryHandler struct{}

func NewReturnSeriesRepository() ReturnSeriesRepository {
	return returnSeriesRepositoryHandler{}
}

func (h returnSeriesRepositoryHandler) Write(path string, returns []domain.PortfolioReturn, cumulative []domain.CumulativeReturn) error {
	if len(returns) != len(cumulative) {
		return fmt.Errorf("got %d returns but %d cumulative returns", len(returns), len(cumulative))
	}

	rows := make([]returnSeriesCsvRow, len(returns))
	for i := range returns {
		if !returns[i].Date.Equal(cumulative[i].Date) {
			return fmt.Errorf("return series out of alignment on row %d: %s vs %s", i, returns[i].Date.Format(time.DateOnly), cumulative[i].Date.Format(time.DateOnly))
		}
		rows[i] = returnSeriesCsvRow{
			Date:             returns[i].Date.Format(time.DateOnly),
			Return:           returns[i].Return,
			CumulativeReturn: cumulative[i].CumulativeReturn,
		}
	}

	return writeCsv(path, &rows)
}
