package repository

import (
	"alphalab/internal/domain"
	"alphalab/internal/util"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

type assetPanelCsvRow struct {
	Date          string `csv:"date"`
	AssetID       string `csv:"asset_id"`
	Price         string `csv:"price"`
	Return        string `csv:"return"`
	SpecificRisk  string `csv:"specific_risk"`
	PredictedBeta string `csv:"predicted_beta"`
	InUniverse    string `csv:"in_universe"`
}

type assetPanelCsvRepositoryHandler struct {
	Path string
}

// NewAssetPanelCsvRepository reads the panel from a local csv export with
// the same columns as the asset_observation table. percentages stay
// percentages
func NewAssetPanelCsvRepository(path string) AssetPanelRepository {
	return assetPanelCsvRepositoryHandler{Path: path}
}

func (h assetPanelCsvRepositoryHandler) List(ctx context.Context, in ListAssetPanelInput) ([]domain.AssetObservation, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset panel %s: %w", h.Path, err)
	}
	defer f.Close()

	rows := []assetPanelCsvRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset panel %s: %w", h.Path, err)
	}

	out := []domain.AssetObservation{}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if date.Before(in.Start) || !util.DateLte(date, in.End) {
			continue
		}
		if in.InUniverse && !parseBool(row.InUniverse) {
			continue
		}
		if row.AssetID == "" {
			return nil, domain.MissingDataError{Err: fmt.Errorf("row %d has no asset_id", i+1)}
		}

		obs := domain.AssetObservation{
			Date:    date,
			AssetID: row.AssetID,
		}
		for _, field := range []struct {
			name  string
			value string
			dest  **float64
		}{
			{"price", row.Price, &obs.Price},
			{"return", row.Return, &obs.Return},
			{"specific_risk", row.SpecificRisk, &obs.SpecificRisk},
			{"predicted_beta", row.PredictedBeta, &obs.PredictedBeta},
		} {
			v, err := parseNullableFloat(field.value)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, field.name, err)
			}
			*field.dest = v
		}
		out = append(out, obs)
	}

	return domain.SortPanel(out), nil
}

// empty, null and NaN cells are missing values
func parseNullableFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "nan", "na":
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) {
		return nil, nil
	}
	return &v, nil
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
