package repository

import (
	"alphalab/internal/domain"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

type alphaCsvRow struct {
	Date          string  `csv:"date"`
	AssetID       string  `csv:"asset_id"`
	Alpha         float64 `csv:"alpha"`
	PredictedBeta float64 `csv:"predicted_beta"`
}

// AlphaRepository persists the alpha artifact handed to the optimizer
type AlphaRepository interface {
	Write(path string, alphas []domain.Alpha) error
}

type alphaRepositoryHandler struct{}

func NewAlphaRepository() AlphaRepository {
	return alphaRepositoryHandler{}
}

func (h alphaRepositoryHandler) Write(path string, alphas []domain.Alpha) error {
	rows := make([]alphaCsvRow, len(alphas))
	for i, a := range alphas {
		rows[i] = alphaCsvRow{
			Date:          a.Date.Format(time.DateOnly),
			AssetID:       a.AssetID,
			Alpha:         a.Alpha,
			PredictedBeta: a.PredictedBeta,
		}
	}

	return writeCsv(path, &rows)
}

// writeCsv writes to a temp file next to path and renames it into place
func writeCsv(path string, rows interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := gocsv.MarshalFile(rows, tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}
