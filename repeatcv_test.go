package repeatcv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() PairedStats {
	return PairedStats{
		Subjects: 6,
		Means:    []float64{10.5, 14.75, 23.75, 30.5, 21.5, 14.5},
		Diffs:    []float64{-1, 0.5, 2.5, -1, 1, -1},
		First:    []float64{10, 15, 25, 30, 22, 14},
		Second:   []float64{11, 14.5, 22.5, 31, 21, 15},
	}
}

// TestEstimate_AllMethods runs each method over the same dataset and
// checks the structural contract: non-negative point estimates, an
// ordered interval where one is defined, and no interval for the pooled
// method.
func TestEstimate_AllMethods(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		wantCV float64
		wantCI bool
	}{
		{name: "root mean", method: RootMean, wantCV: 4.940839691222137, wantCI: true},
		{name: "logarithmic", method: Logarithmic, wantCV: 5.06840735292593, wantCI: true},
		{name: "whole dataset", method: WholeDataset, wantCV: 4.859295307498625, wantCI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Estimate(sampleStats(), tt.method, 0.90)
			require.NoError(t, err)

			assert.Equal(t, tt.method, result.Method)
			assert.InDelta(t, tt.wantCV, result.CVPercent, 1e-9)
			assert.GreaterOrEqual(t, result.CVPercent, 0.0)

			if !tt.wantCI {
				assert.Nil(t, result.CI)
				return
			}
			require.NotNil(t, result.CI)
			assert.LessOrEqual(t, result.CI.Lower, result.CVPercent)
			assert.GreaterOrEqual(t, result.CI.Upper, result.CVPercent)
		})
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	for _, method := range []Method{RootMean, Logarithmic, WholeDataset} {
		first, err := Estimate(sampleStats(), method, 0.95)
		require.NoError(t, err)
		second, err := Estimate(sampleStats(), method, 0.95)
		require.NoError(t, err)
		assert.Equal(t, first, second, "method %s must be a pure function", method)
	}
}

func TestEstimate_ConfidenceRules(t *testing.T) {
	t.Run("missing confidence rejected for interval methods", func(t *testing.T) {
		for _, method := range []Method{RootMean, Logarithmic} {
			_, err := Estimate(sampleStats(), method, 0)
			require.Error(t, err, "method %s", method)
			assert.True(t, errors.Is(err, ErrInvalidMethod))
		}
	})

	t.Run("boundary confidence rejected", func(t *testing.T) {
		_, err := Estimate(sampleStats(), RootMean, 1.0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMethod))
	})

	t.Run("confidence ignored for whole dataset", func(t *testing.T) {
		result, err := Estimate(sampleStats(), WholeDataset, 0)
		require.NoError(t, err)
		assert.Nil(t, result.CI)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := Estimate(sampleStats(), Method("anova"), 0.95)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMethod))
	})
}

func TestEstimate_ErrorPropagation(t *testing.T) {
	t.Run("invalid input surfaces with method context", func(t *testing.T) {
		stats := sampleStats()
		stats.Means[0] = 0

		_, err := Estimate(stats, RootMean, 0.95)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))

		var ee *EstimateError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, RootMean, ee.Method)
	})

	t.Run("undefined lower bound surfaces as invalid result", func(t *testing.T) {
		_, err := Estimate(PairedStats{
			Subjects: 3,
			Means:    []float64{10, 10, 10},
			Diffs:    []float64{0.01, 0.01, 5.0},
		}, RootMean, 0.95)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidResult))
	})
}

func TestParseMethodFacade(t *testing.T) {
	method, err := ParseMethod("logarithmic")
	require.NoError(t, err)
	assert.Equal(t, Logarithmic, method)

	_, err = ParseMethod("nope")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestNewEstimatorReuse(t *testing.T) {
	est, err := NewEstimator(RootMean, 0.90)
	require.NoError(t, err)

	direct, err := Estimate(sampleStats(), RootMean, 0.90)
	require.NoError(t, err)
	viaUnit, err := est.Estimate(sampleStats())
	require.NoError(t, err)
	assert.Equal(t, direct, viaUnit)
}
