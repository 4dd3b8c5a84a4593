package calculator

import (
	"alphalab/internal/domain"
	"fmt"
)

// BuildForwardReturns attaches to each (date, asset) the return the asset
// realizes over the following period. weights set on date t can only be
// judged against what happens after t. the last row of every asset has
// no forward return
func BuildForwardReturns(panel []domain.AssetObservation, workers int) ([]domain.ForwardReturn, error) {
	sorted := domain.SortPanel(panel)
	out := make([]domain.ForwardReturn, len(sorted))
	for i, row := range sorted {
		out[i] = domain.ForwardReturn{
			Date:    row.Date,
			AssetID: row.AssetID,
		}
	}

	groups := domain.GroupByAsset(sorted, func(o domain.AssetObservation) string {
		return o.AssetID
	})
	err := forEachGroup(len(groups), workers, func(g int) error {
		indices := groups[g].Indices
		for k := 0; k+1 < len(indices); k++ {
			out[indices[k]].ForwardReturn = sorted[indices[k+1]].Return
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build forward returns: %w", err)
	}

	return out, nil
}
