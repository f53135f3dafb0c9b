package domain

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Package-level validator instance for input-record validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// PairedStats holds per-subject summary statistics for duplicate
// measurements, as produced by an upstream paired-measurement summarizer
// (for example a Bland-Altman routine). The estimators consume it as-is;
// this package never computes means or differences from raw data.
type PairedStats struct {
	// Subjects is the number of subjects with duplicate measurements.
	Subjects int `json:"subjects" validate:"min=2"`

	// Means is the per-subject mean of the two measurements, one entry
	// per subject.
	Means []float64 `json:"means" validate:"required"`

	// Diffs is the per-subject signed difference between the two
	// measurements, ordered consistently with Means.
	Diffs []float64 `json:"diffs" validate:"required"`

	// First and Second are the raw paired measurements. Only the
	// logarithmic method reads them; it re-derives log-differences from
	// the original values rather than from Diffs. They may be left nil
	// for the other methods.
	First  []float64 `json:"first,omitempty"`
	Second []float64 `json:"second,omitempty"`
}

// ValidateFor checks the invariants the given method depends on. Every
// sequence the method reads must have exactly Subjects entries, all values
// must be finite, mean entries must be non-zero where they divide, and raw
// pairs must be strictly positive where they are logged. Violations are
// reported as ErrInvalidInput before any computation runs.
func (ps PairedStats) ValidateFor(method Method) error {
	if err := validate.Struct(ps); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(ps.Means) != ps.Subjects || len(ps.Diffs) != ps.Subjects {
		return fmt.Errorf("%w: subjects=%d, means=%d, diffs=%d",
			ErrInvalidInput, ps.Subjects, len(ps.Means), len(ps.Diffs))
	}

	for i := range ps.Subjects {
		if !isFinite(ps.Means[i]) || !isFinite(ps.Diffs[i]) {
			return fmt.Errorf("%w: non-finite value at subject %d", ErrInvalidInput, i)
		}
	}

	switch method {
	case MethodRootMean:
		for i, m := range ps.Means {
			if m == 0 {
				return fmt.Errorf("%w: zero mean at subject %d", ErrInvalidInput, i)
			}
		}
	case MethodLogarithmic:
		if len(ps.First) != ps.Subjects || len(ps.Second) != ps.Subjects {
			return fmt.Errorf("%w: subjects=%d, first=%d, second=%d",
				ErrInvalidInput, ps.Subjects, len(ps.First), len(ps.Second))
		}
		for i := range ps.Subjects {
			if !isFinite(ps.First[i]) || !isFinite(ps.Second[i]) {
				return fmt.Errorf("%w: non-finite raw pair at subject %d", ErrInvalidInput, i)
			}
			if ps.First[i] <= 0 || ps.Second[i] <= 0 {
				return fmt.Errorf("%w: non-positive raw pair at subject %d", ErrInvalidInput, i)
			}
		}
	case MethodWholeDataset:
		// Grand-mean divisor is checked by the estimator once computed.
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidMethod, method)
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
