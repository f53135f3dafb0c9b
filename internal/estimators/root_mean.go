package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-repeatcv/internal/domain"
)

var _ domain.Estimator = (*RootMeanEstimator)(nil)

// RootMeanEstimator implements the root-mean CV method: the square root of
// the mean of per-subject normalized squared differences, with a Student-t
// confidence interval propagated on the squared-CV scale.
//
// Algorithm: each subject contributes a within-subject variance
// s2_i = diff_i^2 / 2 and a normalized squared CV r_i = s2_i / mean_i^2.
// The point estimate is sqrt(mean(r)) * 100. The interval is built around
// mean(r) using the sample standard error of r and the t critical value at
// n-1 degrees of freedom, then mapped through the square root.
//
// The interval lives on the squared-CV scale, so a sufficiently dispersed
// r with a small n can push the lower bound negative; that case is
// surfaced as domain.ErrInvalidResult rather than silently producing NaN.
//
// Stateless after construction and safe for concurrent use.
type RootMeanEstimator struct {
	// name is the unique identifier for this estimator instance.
	name string
	// config contains the validated configuration parameters.
	config RootMeanConfig
}

// RootMeanConfig controls interval construction for the root-mean method.
// Configuration is immutable after estimator creation.
type RootMeanConfig struct {
	// Confidence is the two-sided confidence level for the interval,
	// strictly between 0 and 1 (e.g. 0.95). The t quantile is undefined
	// at the boundaries, so exactly 0 and 1 are rejected.
	Confidence float64 `yaml:"confidence" json:"confidence" validate:"gt=0,lt=1"`
}

// NewRootMeanEstimator creates a RootMeanEstimator with a validated
// confidence level. Returns ErrEmptyEstimatorName if name is empty, or
// domain.ErrInvalidMethod if the confidence level is missing or outside
// the open interval (0,1).
func NewRootMeanEstimator(name string, config RootMeanConfig) (*RootMeanEstimator, error) {
	if name == "" {
		return nil, ErrEmptyEstimatorName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: confidence level must be in (0,1), got %v",
			domain.ErrInvalidMethod, config.Confidence)
	}

	return &RootMeanEstimator{
		name:   name,
		config: config,
	}, nil
}

// Name returns the unique identifier for this estimator instance.
func (e *RootMeanEstimator) Name() string { return e.name }

// Method returns domain.MethodRootMean.
func (e *RootMeanEstimator) Method() domain.Method { return domain.MethodRootMean }

// Estimate computes the root-mean CV point estimate and its two-sided
// confidence interval from per-subject means and differences.
//
// Errors:
//   - domain.ErrInvalidInput: length mismatch, fewer than two subjects,
//     a zero per-subject mean, or non-finite input.
//   - domain.ErrInvalidResult: the lower interval bound is negative on
//     the squared-CV scale, leaving its square root undefined.
func (e *RootMeanEstimator) Estimate(stats domain.PairedStats) (domain.Result, error) {
	if err := stats.ValidateFor(domain.MethodRootMean); err != nil {
		return domain.Result{}, domain.NewEstimateError(domain.MethodRootMean, "validate", err)
	}

	n := stats.Subjects

	// Normalized squared CV per subject: (diff^2 / 2) / mean^2.
	ratios := make([]float64, n)
	for i := range n {
		s2 := stats.Diffs[i] * stats.Diffs[i] / 2
		ratios[i] = s2 / (stats.Means[i] * stats.Means[i])
	}

	meanSq := stat.Mean(ratios, nil)
	se := stat.StdDev(ratios, nil) / math.Sqrt(float64(n))
	tCrit := criticalValue(e.config.Confidence, n-1)

	// Interval on the squared-CV scale, mapped through sqrt afterwards.
	lower := meanSq - tCrit*se
	upper := meanSq + tCrit*se
	if lower < 0 {
		return domain.Result{}, domain.NewEstimateError(domain.MethodRootMean, "lower bound",
			fmt.Errorf("%w: negative squared-CV bound %g at confidence %v",
				domain.ErrInvalidResult, lower, e.config.Confidence))
	}

	return domain.Result{
		Method:     domain.MethodRootMean,
		CVPercent:  math.Sqrt(meanSq) * 100,
		Confidence: e.config.Confidence,
		CI: &domain.Interval{
			Lower: math.Sqrt(lower) * 100,
			Upper: math.Sqrt(upper) * 100,
		},
	}, nil
}

// DefaultRootMeanConfig returns a RootMeanConfig with the conventional
// 95% confidence level.
func DefaultRootMeanConfig() RootMeanConfig {
	return RootMeanConfig{Confidence: 0.95}
}

// NewRootMeanFromConfig creates a RootMeanEstimator from a configuration
// map. This is the boundary adapter for YAML/JSON configuration; defaults
// are applied first, then overlaid with the supplied values.
func NewRootMeanFromConfig(name string, config map[string]any) (*RootMeanEstimator, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	cfg := DefaultRootMeanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewRootMeanEstimator(name, cfg)
}
