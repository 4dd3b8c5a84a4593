package calculator

import (
	"alphalab/internal/domain"
)

// FilterUniverse keeps the rows that are tradable: last period's price
// strictly above minPrice, and signal, specific risk and predicted beta
// all present. the price lag is taken on the unfiltered panel so a
// dropped row still serves as the previous period for the next one.
// rows must be sorted by (date, asset_id), as BuildSignals returns them
func FilterUniverse(rows []domain.SignalObservation, minPrice float64) []domain.FilteredObservation {
	prevPrice := make([]*float64, len(rows))
	groups := domain.GroupByAsset(rows, func(o domain.SignalObservation) string {
		return o.AssetID
	})
	for _, group := range groups {
		for k := 1; k < len(group.Indices); k++ {
			prevPrice[group.Indices[k]] = rows[group.Indices[k-1]].Price
		}
	}

	out := []domain.FilteredObservation{}
	for i, row := range rows {
		if prevPrice[i] == nil || *prevPrice[i] <= minPrice {
			continue
		}
		if row.Signal == nil || row.SpecificRisk == nil || row.PredictedBeta == nil {
			continue
		}
		out = append(out, domain.FilteredObservation{
			Date:          row.Date,
			AssetID:       row.AssetID,
			Signal:        *row.Signal,
			SpecificRisk:  *row.SpecificRisk,
			PredictedBeta: *row.PredictedBeta,
		})
	}

	return out
}
