package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ahrav/go-repeatcv/internal/domain"
)

var _ domain.Estimator = (*WholeDatasetEstimator)(nil)

// WholeDatasetEstimator implements the pooled whole-dataset CV method:
// total squared differences over all subjects, without per-subject
// normalization. It is documented upstream as less robust than the
// root-mean and logarithmic methods and is retained for compatibility.
//
// Algorithm: the pooled standard deviation is sqrt(sum(diff^2) / 2n), and
// the point estimate divides it by the grand mean of the per-subject
// means. No confidence interval exists for this method; the pooled
// approach has no rigorous interval derivation, so the result carries a
// point estimate only.
//
// Stateless after construction and safe for concurrent use.
type WholeDatasetEstimator struct {
	// name is the unique identifier for this estimator instance.
	name string
}

// NewWholeDatasetEstimator creates a WholeDatasetEstimator. The method
// has no parameters; it returns ErrEmptyEstimatorName if name is empty.
func NewWholeDatasetEstimator(name string) (*WholeDatasetEstimator, error) {
	if name == "" {
		return nil, ErrEmptyEstimatorName
	}
	return &WholeDatasetEstimator{name: name}, nil
}

// Name returns the unique identifier for this estimator instance.
func (e *WholeDatasetEstimator) Name() string { return e.name }

// Method returns domain.MethodWholeDataset.
func (e *WholeDatasetEstimator) Method() domain.Method { return domain.MethodWholeDataset }

// Estimate computes the pooled CV point estimate. The returned Result has
// a nil CI.
//
// Errors:
//   - domain.ErrInvalidInput: length mismatch, fewer than two subjects,
//     non-finite input, or a zero grand mean (the pooled divisor).
func (e *WholeDatasetEstimator) Estimate(stats domain.PairedStats) (domain.Result, error) {
	if err := stats.ValidateFor(domain.MethodWholeDataset); err != nil {
		return domain.Result{}, domain.NewEstimateError(domain.MethodWholeDataset, "validate", err)
	}

	n := stats.Subjects

	var sumSq float64
	for _, d := range stats.Diffs {
		sumSq += d * d
	}
	sd := math.Sqrt(sumSq / float64(measurementsPerSubject*n))

	grand := stat.Mean(stats.Means, nil)
	if grand == 0 {
		return domain.Result{}, domain.NewEstimateError(domain.MethodWholeDataset, "grand mean",
			fmt.Errorf("%w: grand mean of per-subject means is zero", domain.ErrInvalidInput))
	}

	// The magnitude of the grand mean keeps the CV non-negative for
	// negative-valued measurement scales.
	return domain.Result{
		Method:    domain.MethodWholeDataset,
		CVPercent: sd / math.Abs(grand) * 100,
	}, nil
}

// NewWholeDatasetFromConfig creates a WholeDatasetEstimator from a
// configuration map. The method takes no parameters, so the map is
// ignored; the adapter exists to keep construction uniform across
// methods at the configuration boundary.
func NewWholeDatasetFromConfig(name string, _ map[string]any) (*WholeDatasetEstimator, error) {
	return NewWholeDatasetEstimator(name)
}
