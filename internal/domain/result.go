package domain

// Interval is a two-sided confidence interval on the CV percentage scale.
type Interval struct {
	// Lower is the lower confidence bound, in percent.
	Lower float64 `json:"lower"`

	// Upper is the upper confidence bound, in percent.
	Upper float64 `json:"upper"`
}

// Result is the outcome of a within-subject CV estimation.
type Result struct {
	// Method identifies the estimator that produced this result.
	Method Method `json:"method"`

	// CVPercent is the point estimate of the within-subject coefficient
	// of variation, expressed as a percentage.
	CVPercent float64 `json:"cv_percent"`

	// CI is the two-sided confidence interval around CVPercent.
	// It is nil for the whole-dataset method, which yields a point
	// estimate only.
	CI *Interval `json:"ci,omitempty"`

	// Confidence is the confidence level the interval was built at.
	// Zero when CI is nil.
	Confidence float64 `json:"confidence,omitempty"`
}
