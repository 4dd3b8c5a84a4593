package repository

import (
	"alphalab/internal/domain"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
)

type weightCsvRow struct {
	Date    string  `csv:"date"`
	AssetID string  `csv:"asset_id"`
	Weight  float64 `csv:"weight"`
}

// WeightRepository loads the optimizer's target weights. the optimizer
// writes one file per job, so the weights usually span many files
type WeightRepository interface {
	List(pattern string) ([]domain.Weight, error)
}

type weightRepositoryHandler struct{}

func NewWeightRepository() WeightRepository {
	return weightRepositoryHandler{}
}

func (h weightRepositoryHandler) List(pattern string) ([]domain.Weight, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid weights pattern %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, domain.MissingDataError{Err: fmt.Errorf("no weight files match %s", pattern)}
	}
	sort.Strings(paths)

	out := []domain.Weight{}
	for _, path := range paths {
		weights, err := readWeightFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, weights...)
	}

	return out, nil
}

func readWeightFile(path string) ([]domain.Weight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights %s: %w", path, err)
	}
	defer f.Close()

	rows := []weightCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to read weights %s: %w", path, err)
	}

	out := make([]domain.Weight, len(rows))
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		if row.AssetID == "" {
			return nil, domain.MissingDataError{Err: fmt.Errorf("%s row %d has no asset_id", path, i+1)}
		}
		out[i] = domain.Weight{
			Date:    date,
			AssetID: row.AssetID,
			Weight:  row.Weight,
		}
	}

	return out, nil
}
