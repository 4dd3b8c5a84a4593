package util

import (
	"alphalab/internal/domain"
	"alphalab/pkg/backtester"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PipelineConfig is the on-disk form of every pipeline's parameters.
// fields left out of the file keep their defaults
type PipelineConfig struct {
	Alpha      domain.AlphaConfig        `yaml:"alpha"`
	Evaluation domain.EvaluationConfig   `yaml:"evaluation"`
	Backtest   backtester.BacktestConfig `yaml:"backtest"`
	PanelCsv   string                    `yaml:"panelCsv"`
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Alpha:      domain.DefaultAlphaConfig(),
		Evaluation: domain.DefaultEvaluationConfig(),
		Backtest:   backtester.DefaultBacktestConfig(),
	}
}

// LoadPipelineConfig returns the defaults when path is empty
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()
	if path == "" {
		return &cfg, nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open pipeline config: %w", err)
	}
	err = yaml.Unmarshal(f, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config %s: %w", path, err)
	}

	return &cfg, nil
}
