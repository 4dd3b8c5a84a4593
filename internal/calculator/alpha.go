package calculator

import "alphalab/internal/domain"

// ComposeAlphas turns scores into expected returns: score * ic * specific
// risk. predicted beta rides along for the optimizer
func ComposeAlphas(scores []domain.Score, ic float64) []domain.Alpha {
	alphas := make([]domain.Alpha, len(scores))
	for i, s := range scores {
		alphas[i] = domain.Alpha{
			Date:          s.Date,
			AssetID:       s.AssetID,
			Alpha:         s.Score * ic * s.SpecificRisk,
			PredictedBeta: s.PredictedBeta,
		}
	}
	domain.SortAlphas(alphas)

	return alphas
}
