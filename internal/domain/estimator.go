package domain

// Estimator defines the interface for within-subject CV estimation
// strategies. Implementations are stateless and must be safe for
// concurrent use; each call is a pure function of its input.
type Estimator interface {
	// Name returns the unique identifier of this estimator instance,
	// used in error reporting.
	Name() string

	// Method returns the estimation method this estimator implements.
	Method() Method

	// Estimate computes the within-subject CV point estimate from paired
	// per-subject statistics and, for methods that define one, its
	// two-sided confidence interval.
	//
	// Implementations must validate stats eagerly and return
	// ErrInvalidInput for inconsistent input, ErrInvalidResult when an
	// intermediate value is mathematically undefined, and never a
	// partial result alongside a non-nil error.
	Estimate(stats PairedStats) (Result, error)
}
