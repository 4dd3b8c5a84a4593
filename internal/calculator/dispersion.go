package calculator

import "math"

// relative tolerance below which a stdev is rounding noise from the mean
const dispersionEpsilon = 1e-12

// hasDispersion reports whether stdev reflects real spread in dataset.
// identical values can still produce a stdev around 1e-17 because the
// mean is not exactly representable
func hasDispersion(dataset []float64, mean, stdev float64) bool {
	if math.IsNaN(stdev) || math.IsInf(stdev, 0) {
		return false
	}
	allEqual := true
	for _, v := range dataset[1:] {
		if v != dataset[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}
	return stdev > dispersionEpsilon*math.Max(math.Abs(mean), 1)
}
