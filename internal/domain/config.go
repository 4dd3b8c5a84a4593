package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	DefaultSignalName     = "momentum"
	DefaultRollingWindow  = 230
	DefaultSignalLag      = 21
	DefaultMinPrice       = 5.0
	DefaultIC             = 0.05
	DefaultGamma          = 50
	TradingDaysPerYear    = 252
	DefaultAlphaWorkers   = 8
	defaultDateLayout     = time.DateOnly
	defaultWeightsPattern = "weights/%s/%d/*.csv"
)

// AlphaConfig parameterizes one run of the alpha pipeline
type AlphaConfig struct {
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	SignalName string    `yaml:"signalName"`
	// Window is the number of trailing periods summed into the signal
	Window int `yaml:"window"`
	// Lag is how many periods the signal is pushed forward so that the
	// value on date t only uses returns observed at least Lag periods earlier
	Lag int `yaml:"lag"`
	// MinPrice is compared against the previous period's price
	MinPrice   float64 `yaml:"minPrice"`
	IC         float64 `yaml:"ic"`
	OutputPath string  `yaml:"outputPath"`
	Workers    int     `yaml:"workers"`
}

func DefaultAlphaConfig() AlphaConfig {
	return AlphaConfig{
		Start:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		SignalName: DefaultSignalName,
		Window:     DefaultRollingWindow,
		Lag:        DefaultSignalLag,
		MinPrice:   DefaultMinPrice,
		IC:         DefaultIC,
		Workers:    DefaultAlphaWorkers,
	}
}

func (c AlphaConfig) ArtifactPath() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return fmt.Sprintf("%s_alphas.csv", c.SignalName)
}

func (c AlphaConfig) Validate() error {
	if c.SignalName == "" {
		return fmt.Errorf("signal name is required")
	}
	if c.Window < 1 {
		return fmt.Errorf("rolling window must be positive, got %d", c.Window)
	}
	if c.Lag < 0 {
		return fmt.Errorf("signal lag cannot be negative, got %d", c.Lag)
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("end %s is before start %s", c.End.Format(defaultDateLayout), c.Start.Format(defaultDateLayout))
	}
	return nil
}

// EvaluationConfig parameterizes one run of the evaluation pipeline
type EvaluationConfig struct {
	Start         time.Time `yaml:"start"`
	End           time.Time `yaml:"end"`
	SignalName    string    `yaml:"signalName"`
	Gamma         int       `yaml:"gamma"`
	WeightsGlob   string    `yaml:"weightsGlob"`
	ChartDataPath string    `yaml:"chartDataPath"`
	Workers       int       `yaml:"workers"`
}

func DefaultEvaluationConfig() EvaluationConfig {
	return EvaluationConfig{
		Start:      time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		SignalName: DefaultSignalName,
		Gamma:      DefaultGamma,
		Workers:    DefaultAlphaWorkers,
	}
}

func (c EvaluationConfig) WeightsPattern() string {
	if c.WeightsGlob != "" {
		return c.WeightsGlob
	}
	return filepath.FromSlash(fmt.Sprintf(defaultWeightsPattern, c.SignalName, c.Gamma))
}

func (c EvaluationConfig) ChartPath() string {
	if c.ChartDataPath != "" {
		return c.ChartDataPath
	}
	return fmt.Sprintf("%s_%d_cumulative_returns.csv", c.SignalName, c.Gamma)
}

func (c EvaluationConfig) Validate() error {
	if c.SignalName == "" && c.WeightsGlob == "" {
		return fmt.Errorf("either signal name or weights glob is required")
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("end %s is before start %s", c.End.Format(defaultDateLayout), c.Start.Format(defaultDateLayout))
	}
	return nil
}
