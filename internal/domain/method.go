package domain

import "fmt"

// Method identifies one of the within-subject CV estimation strategies.
// The set is closed; new methods require a new constant and explicit
// handling in every switch that dispatches on Method.
type Method string

// Supported estimation methods.
const (
	// MethodRootMean estimates the CV from the root mean of per-subject
	// normalized squared differences. Carries a confidence interval.
	MethodRootMean Method = "root_mean"

	// MethodLogarithmic estimates the CV on log-transformed measurements,
	// using the log-normal approximation for multiplicative error.
	// Carries a confidence interval.
	MethodLogarithmic Method = "logarithmic"

	// MethodWholeDataset estimates the CV from the pooled standard
	// deviation over the whole dataset. Point estimate only; the pooled
	// approach has no rigorous interval derivation and is retained for
	// compatibility despite being less robust than the other two.
	MethodWholeDataset Method = "whole_dataset"
)

// ParseMethod converts a method name into a Method constant.
// It is the only place where untyped method strings enter the domain;
// everything downstream dispatches on the typed constant.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case MethodRootMean, MethodLogarithmic, MethodWholeDataset:
		return Method(name), nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidMethod, name)
	}
}

// String returns the canonical name of the method.
func (m Method) String() string { return string(m) }

// RequiresConfidence reports whether the method constructs a confidence
// interval and therefore needs a confidence level in (0,1).
func (m Method) RequiresConfidence() bool {
	return m == MethodRootMean || m == MethodLogarithmic
}
