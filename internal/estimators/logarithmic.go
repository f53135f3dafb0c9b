package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-repeatcv/internal/domain"
)

var _ domain.Estimator = (*LogarithmicEstimator)(nil)

// measurementsPerSubject is fixed at two: the estimators operate on
// duplicate measurements only.
const measurementsPerSubject = 2

// LogarithmicEstimator implements the logarithmic CV method, which
// exploits the log-normal approximation for multiplicative measurement
// error. It re-derives log-differences from the raw paired values rather
// than from the precomputed differences, so PairedStats.First and
// PairedStats.Second must be populated with strictly positive values.
//
// Algorithm: per subject, the log-scale within-subject variance is
// (ln first - ln second)^2 / 2; their mean under a square root gives the
// within-subject log standard deviation sw. The point estimate is
// (e^sw - 1) * 100. The interval is built around sw with standard error
// sw / sqrt(2n(m-1)) for m = 2 duplicates, using the t critical value at
// n-1 degrees of freedom, then mapped through e^b - 1. The exponential is
// monotonic, so bound ordering is preserved.
//
// Stateless after construction and safe for concurrent use.
type LogarithmicEstimator struct {
	// name is the unique identifier for this estimator instance.
	name string
	// config contains the validated configuration parameters.
	config LogarithmicConfig
}

// LogarithmicConfig controls interval construction for the logarithmic
// method. Configuration is immutable after estimator creation.
type LogarithmicConfig struct {
	// Confidence is the two-sided confidence level for the interval,
	// strictly between 0 and 1 (e.g. 0.95).
	Confidence float64 `yaml:"confidence" json:"confidence" validate:"gt=0,lt=1"`
}

// NewLogarithmicEstimator creates a LogarithmicEstimator with a validated
// confidence level. Returns ErrEmptyEstimatorName if name is empty, or
// domain.ErrInvalidMethod if the confidence level is missing or outside
// the open interval (0,1).
func NewLogarithmicEstimator(name string, config LogarithmicConfig) (*LogarithmicEstimator, error) {
	if name == "" {
		return nil, ErrEmptyEstimatorName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: confidence level must be in (0,1), got %v",
			domain.ErrInvalidMethod, config.Confidence)
	}

	return &LogarithmicEstimator{
		name:   name,
		config: config,
	}, nil
}

// Name returns the unique identifier for this estimator instance.
func (e *LogarithmicEstimator) Name() string { return e.name }

// Method returns domain.MethodLogarithmic.
func (e *LogarithmicEstimator) Method() domain.Method { return domain.MethodLogarithmic }

// Estimate computes the logarithmic CV point estimate and its two-sided
// confidence interval from the raw paired measurements.
//
// Errors:
//   - domain.ErrInvalidInput: length mismatch, fewer than two subjects,
//     non-positive or non-finite raw values.
func (e *LogarithmicEstimator) Estimate(stats domain.PairedStats) (domain.Result, error) {
	if err := stats.ValidateFor(domain.MethodLogarithmic); err != nil {
		return domain.Result{}, domain.NewEstimateError(domain.MethodLogarithmic, "validate", err)
	}

	n := stats.Subjects

	// Log-scale within-subject variance per subject.
	logVars := make([]float64, n)
	for i := range n {
		d := math.Log(stats.First[i]) - math.Log(stats.Second[i])
		logVars[i] = d * d / 2
	}

	sw := math.Sqrt(stat.Mean(logVars, nil))
	se := sw / math.Sqrt(float64(measurementsPerSubject*n*(measurementsPerSubject-1)))
	tCrit := criticalValue(e.config.Confidence, n-1)

	// Interval on the log-sd scale, mapped through e^b - 1 afterwards.
	lower := sw - tCrit*se
	upper := sw + tCrit*se

	return domain.Result{
		Method:     domain.MethodLogarithmic,
		CVPercent:  (math.Exp(sw) - 1) * 100,
		Confidence: e.config.Confidence,
		CI: &domain.Interval{
			Lower: (math.Exp(lower) - 1) * 100,
			Upper: (math.Exp(upper) - 1) * 100,
		},
	}, nil
}

// DefaultLogarithmicConfig returns a LogarithmicConfig with the
// conventional 95% confidence level.
func DefaultLogarithmicConfig() LogarithmicConfig {
	return LogarithmicConfig{Confidence: 0.95}
}

// NewLogarithmicFromConfig creates a LogarithmicEstimator from a
// configuration map. This is the boundary adapter for YAML/JSON
// configuration; defaults are applied first, then overlaid with the
// supplied values.
func NewLogarithmicFromConfig(name string, config map[string]any) (*LogarithmicEstimator, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	cfg := DefaultLogarithmicConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewLogarithmicEstimator(name, cfg)
}
