package metric

import "errors"

// Sentinel errors returned by the metric engine. All are terminal: the caller
// must fix the inputs, there is no retry or partial-result path.
var (
	// ErrShapeMismatch reports masks that differ in shape or have no elements.
	ErrShapeMismatch = errors.New("masks must have the same shape and a non-zero number of elements")

	// ErrUnsupportedMetric reports an unrecognized distance metric name.
	ErrUnsupportedMetric = errors.New(`unsupported distance metric, available options are ["euclidean", "chessboard", "taxicab"]`)

	// ErrUnsupportedReduction reports an unrecognized reduction name.
	ErrUnsupportedReduction = errors.New(`unsupported reduction, available options are ["none", "mean", "sum", "mean_batch", "sum_batch", "mean_channel", "sum_channel"]`)
)
