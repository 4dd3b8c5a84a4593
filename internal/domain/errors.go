package domain

import (
	"fmt"
	"time"
)

// MissingDataError means a value the pipeline needs at this point is absent
type MissingDataError struct {
	Err error
}

func (e MissingDataError) Error() string {
	return fmt.Sprintf("missing data: %s", e.Err.Error())
}

func (e MissingDataError) Unwrap() error {
	return e.Err
}

// InsufficientHistoryError is a warning, not a failure. the asset's
// signal is left missing and the run carries on
type InsufficientHistoryError struct {
	AssetID      string
	Observations int
	Required     int
}

func (e InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history for %s: have %d observations, need %d", e.AssetID, e.Observations, e.Required)
}

// InvalidReturnError is a warning. a return at or below -100% has no
// finite log, so it counts as missing and every window containing it
// has no signal
type InvalidReturnError struct {
	AssetID string
	Date    time.Time
	Return  float64
}

func (e InvalidReturnError) Error() string {
	return fmt.Sprintf("invalid return %f for %s on %s, treated as missing", e.Return, e.AssetID, e.Date.Format(time.DateOnly))
}

// DegenerateStatisticsError is returned instead of dividing by zero
type DegenerateStatisticsError struct {
	Err error
}

func (e DegenerateStatisticsError) Error() string {
	return fmt.Sprintf("degenerate statistics: %s", e.Err.Error())
}

func (e DegenerateStatisticsError) Unwrap() error {
	return e.Err
}
