package estimators

import (
	"fmt"

	"github.com/ahrav/go-repeatcv/internal/domain"
)

// New constructs the estimator for the given method. The confidence level
// applies to the root-mean and logarithmic methods and is ignored by the
// whole-dataset method, which yields a point estimate only.
//
// The switch is exhaustive over the closed method set; an unknown method
// returns domain.ErrInvalidMethod.
func New(method domain.Method, confidence float64) (domain.Estimator, error) {
	switch method {
	case domain.MethodRootMean:
		return NewRootMeanEstimator(method.String(), RootMeanConfig{Confidence: confidence})
	case domain.MethodLogarithmic:
		return NewLogarithmicEstimator(method.String(), LogarithmicConfig{Confidence: confidence})
	case domain.MethodWholeDataset:
		return NewWholeDatasetEstimator(method.String())
	default:
		return nil, fmt.Errorf("%w: unknown method %q", domain.ErrInvalidMethod, method)
	}
}

// FromConfig constructs the estimator for the given method from a raw
// configuration map. This is the boundary adapter used when method and
// parameters arrive together from YAML or JSON configuration.
func FromConfig(name string, method domain.Method, config map[string]any) (domain.Estimator, error) {
	switch method {
	case domain.MethodRootMean:
		return NewRootMeanFromConfig(name, config)
	case domain.MethodLogarithmic:
		return NewLogarithmicFromConfig(name, config)
	case domain.MethodWholeDataset:
		return NewWholeDatasetFromConfig(name, config)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", domain.ErrInvalidMethod, method)
	}
}
