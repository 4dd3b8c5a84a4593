package calculator

import "alphalab/internal/domain"

// ToFractional converts the percentage-denominated columns (return and
// specific risk) into fractions. the input is left untouched
func ToFractional(rows []domain.AssetObservation) []domain.AssetObservation {
	out := make([]domain.AssetObservation, len(rows))
	for i, row := range rows {
		out[i] = row
		out[i].Return = divideBy100(row.Return)
		out[i].SpecificRisk = divideBy100(row.SpecificRisk)
	}
	return out
}

func divideBy100(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f / 100
	return &v
}
