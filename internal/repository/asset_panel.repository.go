package repository

import (
	"alphalab/internal/db/models/postgres/public/model"
	. "alphalab/internal/db/models/postgres/public/table"
	"alphalab/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
)

type ListAssetPanelInput struct {
	Start time.Time
	End   time.Time
	// InUniverse restricts the panel to rows flagged as in the
	// estimation universe upstream
	InUniverse bool
}

// AssetPanelRepository returns the raw panel. return and specific risk
// come back in percent, exactly as stored
type AssetPanelRepository interface {
	List(ctx context.Context, in ListAssetPanelInput) ([]domain.AssetObservation, error)
}

type assetPanelRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetPanelRepository(db *sql.DB) AssetPanelRepository {
	return assetPanelRepositoryHandler{Db: db}
}

func listAssetPanelQuery(in ListAssetPanelInput) SelectStatement {
	condition := AssetObservation.Date.BETWEEN(DateT(in.Start), DateT(in.End))
	if in.InUniverse {
		condition = condition.AND(AssetObservation.InUniverse.IS_TRUE())
	}

	return AssetObservation.
		SELECT(AssetObservation.AllColumns).
		WHERE(condition).
		ORDER_BY(
			AssetObservation.Date.ASC(),
			AssetObservation.AssetID.ASC(),
		)
}

func (h assetPanelRepositoryHandler) List(ctx context.Context, in ListAssetPanelInput) ([]domain.AssetObservation, error) {
	query := listAssetPanelQuery(in)

	result := []model.AssetObservation{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset panel between %s and %s: %w", in.Start.Format(time.DateOnly), in.End.Format(time.DateOnly), err)
	}

	out := make([]domain.AssetObservation, len(result))
	for i, m := range result {
		out[i] = domain.AssetObservation{
			Date:          m.Date.UTC(),
			AssetID:       m.AssetID,
			Price:         m.Price,
			Return:        m.ReturnPct,
			SpecificRisk:  m.SpecificRiskPct,
			PredictedBeta: m.PredictedBeta,
		}
	}

	return out, nil
}
