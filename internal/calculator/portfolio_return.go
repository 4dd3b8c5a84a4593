package calculator

import (
	"alphalab/internal/domain"
	"sort"
	"time"
)

// AggregatePortfolioReturns left-joins weights onto forward returns by
// (date, asset_id) and sums weight * forward_return per date.
//
// a weight with no matching row, or whose forward return is missing,
// contributes zero. a date where none of the weights matched a present
// forward return has no realized return and is left out entirely
func AggregatePortfolioReturns(weights []domain.Weight, forwardReturns []domain.ForwardReturn) []domain.PortfolioReturn {
	lookup := make(map[domain.PanelKey]*float64, len(forwardReturns))
	for _, fr := range forwardReturns {
		lookup[domain.NewPanelKey(fr.Date, fr.AssetID)] = fr.ForwardReturn
	}

	type dateTotal struct {
		sum        float64
		numMatched int
	}
	totals := map[time.Time]*dateTotal{}
	for _, w := range weights {
		key := domain.NewPanelKey(w.Date, w.AssetID)
		total, ok := totals[key.Date]
		if !ok {
			total = &dateTotal{}
			totals[key.Date] = total
		}
		fr := lookup[key]
		if fr == nil {
			continue
		}
		total.sum += w.Weight * *fr
		total.numMatched++
	}

	out := []domain.PortfolioReturn{}
	for date, total := range totals {
		if total.numMatched == 0 {
			continue
		}
		out = append(out, domain.PortfolioReturn{
			Date:   date,
			Return: total.sum,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
