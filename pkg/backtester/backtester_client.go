package backtester

import (
	"alphalab/internal/logger"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// constraint names understood by the remote optimizer
var knownConstraints = map[string]bool{
	"ZeroBeta":         true,
	"ZeroInvestment":   true,
	"UnitBeta":         true,
	"LongOnly":         true,
	"FullInvestment":   true,
	"NoBuyingOnMargin": true,
}

var (
	memPattern  = regexp.MustCompile(`^[0-9]+[KMGT]?$`)
	timePattern = regexp.MustCompile(`^([0-9]+-)?[0-9]{1,2}:[0-9]{2}:[0-9]{2}$`)
)

type SlurmConfig struct {
	NCPUs             int    `json:"nCpus" yaml:"nCpus"`
	Mem               string `json:"mem" yaml:"mem"`
	Time              string `json:"time" yaml:"time"`
	MailType          string `json:"mailType" yaml:"mailType"`
	MaxConcurrentJobs int    `json:"maxConcurrentJobs" yaml:"maxConcurrentJobs"`
}

func DefaultSlurmConfig() SlurmConfig {
	return SlurmConfig{
		NCPUs:             8,
		Mem:               "32G",
		Time:              "03:00:00",
		MailType:          "BEGIN,END,FAIL",
		MaxConcurrentJobs: 30,
	}
}

type BacktestConfig struct {
	SignalName  string      `json:"signalName" yaml:"signalName"`
	DataPath    string      `json:"dataPath" yaml:"dataPath"`
	Gamma       float64     `json:"gamma" yaml:"gamma"`
	ProjectRoot string      `json:"projectRoot" yaml:"projectRoot"`
	Email       string      `json:"email" yaml:"email"`
	Constraints []string    `json:"constraints" yaml:"constraints"`
	Slurm       SlurmConfig `json:"slurm" yaml:"slurm"`
}

func DefaultBacktestConfig() BacktestConfig {
	return BacktestConfig{
		SignalName:  "momentum",
		DataPath:    "momentum_alphas.csv",
		Gamma:       50,
		Constraints: []string{"ZeroBeta", "ZeroInvestment"},
		Slurm:       DefaultSlurmConfig(),
	}
}

func (c BacktestConfig) Validate() error {
	errs := []error{}
	if c.SignalName == "" {
		errs = append(errs, fmt.Errorf("signal name is required"))
	}
	if c.DataPath == "" {
		errs = append(errs, fmt.Errorf("alpha data path is required"))
	}
	if c.Gamma <= 0 {
		errs = append(errs, fmt.Errorf("risk aversion (gamma) must be positive, got %v", c.Gamma))
	}
	for _, constraint := range c.Constraints {
		if !knownConstraints[constraint] {
			errs = append(errs, fmt.Errorf("unknown constraint %q", constraint))
		}
	}
	if c.Slurm.NCPUs < 1 {
		errs = append(errs, fmt.Errorf("must request at least 1 cpu, got %d", c.Slurm.NCPUs))
	}
	if !memPattern.MatchString(c.Slurm.Mem) {
		errs = append(errs, fmt.Errorf("invalid memory request %q", c.Slurm.Mem))
	}
	if !timePattern.MatchString(c.Slurm.Time) {
		errs = append(errs, fmt.Errorf("invalid time limit %q", c.Slurm.Time))
	}
	if c.Slurm.MaxConcurrentJobs < 1 {
		errs = append(errs, fmt.Errorf("max concurrent jobs must be positive, got %d", c.Slurm.MaxConcurrentJobs))
	}
	return errors.Join(errs...)
}

type Client struct {
	HttpClient *http.Client
	Endpoint   string
	ApiKey     string
}

func NewClient(endpoint, apiKey string) Client {
	return Client{
		HttpClient: http.DefaultClient,
		Endpoint:   strings.TrimRight(endpoint, "/"),
		ApiKey:     apiKey,
	}
}

type submitRequest struct {
	SubmissionID uuid.UUID      `json:"submissionId"`
	Config       BacktestConfig `json:"config"`
}

type Submission struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	JobIDs       []string  `json:"jobIds"`
	DryRun       bool      `json:"dryRun"`
	Payload      string    `json:"payload"`
}

// Submit sends the backtest job to the execution service. with dryRun
// set the request is built and logged but never sent
func (c Client) Submit(ctx context.Context, cfg BacktestConfig, dryRun bool) (*Submission, error) {
	log := logger.FromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backtest config: %w", err)
	}

	req := submitRequest{
		SubmissionID: uuid.New(),
		Config:       cfg,
	}
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backtest config: %w", err)
	}

	out := &Submission{
		SubmissionID: req.SubmissionID,
		JobIDs:       []string{},
		DryRun:       dryRun,
		Payload:      string(payload),
	}
	if dryRun {
		log.Infow("dry run, not submitting backtest", "submissionId", req.SubmissionID, "signal", cfg.SignalName)
		return out, nil
	}
	if c.Endpoint == "" {
		return nil, fmt.Errorf("backtester endpoint is not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/jobs", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.ApiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.ApiKey)
	}

	response, err := c.HttpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to submit backtest: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusAccepted {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	type submitResponse struct {
		JobIDs []string `json:"jobIds"`
	}
	responseJson := submitResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submit response: %w", err)
	}
	out.JobIDs = responseJson.JobIDs

	log.Infow("submitted backtest", "submissionId", req.SubmissionID, "jobIds", out.JobIDs)

	return out, nil
}
