// Package repeatcv estimates the within-subject coefficient of variation
// (CV) and its confidence interval from paired duplicate measurements,
// following Bland's repeatability methods.
//
// The input is a set of per-subject summary statistics (mean and signed
// difference of the two measurements per subject, plus the raw pairs for
// the logarithmic method), produced by an upstream paired-measurement
// summarizer such as a Bland-Altman routine. Three estimation methods are
// available: RootMean and Logarithmic carry two-sided Student-t confidence
// intervals; WholeDataset is a pooled point estimate retained for
// compatibility.
//
// All estimation is pure and deterministic: identical inputs produce
// identical results, and concurrent calls need no synchronization.
package repeatcv

import (
	"github.com/ahrav/go-repeatcv/internal/domain"
	"github.com/ahrav/go-repeatcv/internal/estimators"
)

// Re-exported domain types. PairedStats is the input contract, Result the
// output record; Estimator is implemented by every method's unit.
type (
	// PairedStats holds per-subject summary statistics for duplicate
	// measurements. See the field documentation in the domain package.
	PairedStats = domain.PairedStats

	// Method identifies one of the estimation strategies.
	Method = domain.Method

	// Result is the outcome of an estimation: the CV point estimate in
	// percent and, where the method defines one, its confidence interval.
	Result = domain.Result

	// Interval is a two-sided confidence interval in percent.
	Interval = domain.Interval

	// Estimator is the interface implemented by all estimation units.
	Estimator = domain.Estimator

	// EstimateError wraps a failure with the method and stage that
	// rejected it.
	EstimateError = domain.EstimateError
)

// Estimation methods.
const (
	// RootMean uses the root mean of per-subject normalized squared
	// differences. Carries a confidence interval.
	RootMean = domain.MethodRootMean

	// Logarithmic operates on log-transformed measurements. Carries a
	// confidence interval.
	Logarithmic = domain.MethodLogarithmic

	// WholeDataset pools squared differences over the whole dataset.
	// Point estimate only; less robust, retained for compatibility.
	WholeDataset = domain.MethodWholeDataset
)

// Sentinel errors, matchable with errors.Is.
var (
	// ErrInvalidInput reports malformed or inconsistent paired statistics.
	ErrInvalidInput = domain.ErrInvalidInput

	// ErrInvalidMethod reports an unknown method or a missing or
	// out-of-range confidence level.
	ErrInvalidMethod = domain.ErrInvalidMethod

	// ErrInvalidResult reports a mathematically undefined intermediate
	// value, such as a negative squared-CV confidence bound.
	ErrInvalidResult = domain.ErrInvalidResult
)

// ParseMethod converts a method name ("root_mean", "logarithmic",
// "whole_dataset") into a Method, returning ErrInvalidMethod for unknown
// names.
func ParseMethod(name string) (Method, error) { return domain.ParseMethod(name) }

// Estimate computes the within-subject CV for the given method. The
// confidence level must lie in (0,1) for RootMean and Logarithmic and is
// ignored by WholeDataset.
//
// It returns either a complete Result or an error identifying the failed
// precondition; no partial results are produced.
func Estimate(stats PairedStats, method Method, confidence float64) (Result, error) {
	est, err := estimators.New(method, confidence)
	if err != nil {
		return Result{}, err
	}
	return est.Estimate(stats)
}

// NewEstimator constructs a reusable estimation unit for the given
// method, for callers that run many datasets through one configuration.
// The confidence level follows the same rules as Estimate.
func NewEstimator(method Method, confidence float64) (Estimator, error) {
	return estimators.New(method, confidence)
}
