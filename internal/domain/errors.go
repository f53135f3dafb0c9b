package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by CV estimation operations.
var (
	// ErrInvalidInput indicates malformed or inconsistent paired statistics:
	// sequence length mismatch, fewer than two subjects, a zero divisor,
	// a non-positive logarithm argument, or a non-finite value.
	ErrInvalidInput = errors.New("invalid paired statistics")

	// ErrInvalidMethod indicates an unknown estimation method, or a missing
	// or out-of-range confidence level for a method that requires one.
	ErrInvalidMethod = errors.New("invalid method")

	// ErrInvalidResult indicates that an intermediate computation produced a
	// mathematically undefined value, such as a negative quantity under a
	// square root when constructing a confidence bound.
	ErrInvalidResult = errors.New("invalid result")
)

// EstimateError reports a failed estimation together with the method and
// the stage of the computation that rejected it.
type EstimateError struct {
	// Method is the estimation method that was running.
	Method Method

	// Op describes the stage that failed, e.g. "validate" or "lower bound".
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for EstimateError.
func (e *EstimateError) Error() string {
	return fmt.Sprintf("estimate error: method=%s, op=%s, err=%v", e.Method, e.Op, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *EstimateError) Unwrap() error { return e.Err }

// NewEstimateError creates a new EstimateError with the given details.
func NewEstimateError(method Method, op string, err error) *EstimateError {
	return &EstimateError{
		Method: method,
		Op:     op,
		Err:    err,
	}
}
