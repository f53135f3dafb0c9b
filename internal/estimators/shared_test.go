package estimators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-repeatcv/internal/domain"
)

// sampleStats is the duplicate-measurement dataset used across the
// estimator tests: six subjects, each measured twice. Raw pairs are
// consistent with the means and differences (mean ± diff/2).
func sampleStats() domain.PairedStats {
	return domain.PairedStats{
		Subjects: 6,
		Means:    []float64{10.5, 14.75, 23.75, 30.5, 21.5, 14.5},
		Diffs:    []float64{-1, 0.5, 2.5, -1, 1, -1},
		First:    []float64{10, 15, 25, 30, 22, 14},
		Second:   []float64{11, 14.5, 22.5, 31, 21, 15},
	}
}

// zeroDiffStats has no within-subject variability at all; every method
// must estimate a CV of exactly zero for it.
func zeroDiffStats() domain.PairedStats {
	return domain.PairedStats{
		Subjects: 3,
		Means:    []float64{5, 10, 15},
		Diffs:    []float64{0, 0, 0},
		First:    []float64{5, 10, 15},
		Second:   []float64{5, 10, 15},
	}
}

// TestCriticalValue pins the Student-t critical values against reference
// quantiles (R's qt). The two-sided convention maps confidence c to the
// one-sided probability 1-(1-c)/2.
func TestCriticalValue(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		df         int
		want       float64
	}{
		{name: "90% at 5 df is the 0.95 quantile", confidence: 0.90, df: 5, want: 2.015048},
		{name: "95% at 5 df", confidence: 0.95, df: 5, want: 2.570582},
		{name: "99% at 5 df", confidence: 0.99, df: 5, want: 4.032143},
		{name: "95% at 2 df", confidence: 0.95, df: 2, want: 4.302653},
		{name: "95% at 1 df", confidence: 0.95, df: 1, want: 12.706205},
		{name: "90% at 1 df", confidence: 0.90, df: 1, want: 6.313752},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, criticalValue(tt.confidence, tt.df), 1e-5)
		})
	}
}

func TestCriticalValueWidensWithConfidence(t *testing.T) {
	assert.Less(t, criticalValue(0.90, 5), criticalValue(0.95, 5))
	assert.Less(t, criticalValue(0.95, 5), criticalValue(0.99, 5))
}
