// Package estimators provides the concrete within-subject CV estimation
// units: root-mean, logarithmic, and whole-dataset, after Bland's
// repeatability methods for paired duplicate measurements.
package estimators

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/stat/distuv"
)

// Common errors returned by estimator constructors.
var (
	// ErrEmptyEstimatorName is returned when attempting to create an
	// estimator with an empty name.
	ErrEmptyEstimatorName = errors.New("estimator name cannot be empty")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// criticalValue returns the two-sided Student-t critical value for the
// given confidence level: the quantile at 1-(1-confidence)/2 with the
// given degrees of freedom. Matches R's qt(prob, df).
func criticalValue(confidence float64, df int) float64 {
	prob := 1 - (1-confidence)/2
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return t.Quantile(prob)
}
