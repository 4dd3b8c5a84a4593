package calculator

import (
	"alphalab/internal/domain"
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

type ScoreCrossSectionResult struct {
	// Scores are sorted by (date, asset_id)
	Scores []domain.Score
	// SkippedDates holds one error per date whose cross section could
	// not be standardized. those dates have no scores at all
	SkippedDates []SkippedDate
}

type SkippedDate struct {
	Date time.Time
	Err  error
}

// ScoreCrossSection standardizes the signal within each date:
// score = (signal - mean) / stdev, using the population mean and stdev
// of the assets in that date's universe. nothing carries across dates
func ScoreCrossSection(rows []domain.FilteredObservation, workers int) (*ScoreCrossSectionResult, error) {
	if len(rows) == 0 {
		return nil, domain.MissingDataError{Err: fmt.Errorf("cannot score an empty universe")}
	}

	groups := domain.GroupByDate(rows, func(o domain.FilteredObservation) time.Time {
		return o.Date
	})
	scoresByDate := make([][]domain.Score, len(groups))
	errByDate := make([]error, len(groups))

	err := forEachGroup(len(groups), workers, func(g int) error {
		group := groups[g]
		signals := make([]float64, len(group.Indices))
		for k, idx := range group.Indices {
			signals[k] = rows[idx].Signal
		}

		zScores, err := zScores(signals)
		if err != nil {
			errByDate[g] = err
			return nil
		}

		scores := make([]domain.Score, len(group.Indices))
		for k, idx := range group.Indices {
			scores[k] = domain.Score{
				Date:          rows[idx].Date,
				AssetID:       rows[idx].AssetID,
				Score:         zScores[k],
				SpecificRisk:  rows[idx].SpecificRisk,
				PredictedBeta: rows[idx].PredictedBeta,
			}
		}
		sort.Slice(scores, func(i, j int) bool {
			return scores[i].AssetID < scores[j].AssetID
		})
		scoresByDate[g] = scores
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to score cross sections: %w", err)
	}

	out := &ScoreCrossSectionResult{
		Scores:       []domain.Score{},
		SkippedDates: []SkippedDate{},
	}
	for g, scores := range scoresByDate {
		if errByDate[g] != nil {
			out.SkippedDates = append(out.SkippedDates, SkippedDate{
				Date: groups[g].Date,
				Err:  fmt.Errorf("failed to score %s: %w", groups[g].Date.Format(time.DateOnly), errByDate[g]),
			})
			continue
		}
		out.Scores = append(out.Scores, scores...)
	}

	return out, nil
}

// zScores needs at least two values with some dispersion. anything
// less is reported rather than turned into NaN or Inf
func zScores(dataset []float64) ([]float64, error) {
	if len(dataset) < 2 {
		return nil, domain.DegenerateStatisticsError{
			Err: fmt.Errorf("cannot compute z-score of less than two values, got %d value(s)", len(dataset)),
		}
	}
	mean, err := stats.Mean(dataset)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationPopulation(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	if !hasDispersion(dataset, mean, stdev) {
		return nil, domain.DegenerateStatisticsError{Err: fmt.Errorf("0 stdev across %d values", len(dataset))}
	}

	out := make([]float64, len(dataset))
	for i, v := range dataset {
		out[i] = (v - mean) / stdev
	}

	return out, nil
}
