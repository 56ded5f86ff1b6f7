// Package metric implements boundary-based distance metrics for segmentation
// masks and the NaN-aware reduction of per-sample, per-class score tensors.
package metric

import "fmt"

// DistanceMetric selects how the surface distance field is computed.
type DistanceMetric int

// Supported distance metrics.
const (
	// Euclidean is the exact Euclidean distance transform.
	Euclidean DistanceMetric = iota
	// Chessboard is the chamfer transform with the max-coordinate-difference
	// step metric (8-/26-connectivity).
	Chessboard
	// Taxicab is the chamfer transform with the sum-of-coordinate-difference
	// step metric (4-/6-connectivity).
	Taxicab
)

// String returns the metric's wire name.
func (m DistanceMetric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Chessboard:
		return "chessboard"
	case Taxicab:
		return "taxicab"
	default:
		return fmt.Sprintf("DistanceMetric(%d)", int(m))
	}
}

// ParseDistanceMetric converts a metric name to its DistanceMetric value.
func ParseDistanceMetric(name string) (DistanceMetric, error) {
	switch name {
	case "euclidean":
		return Euclidean, nil
	case "chessboard":
		return Chessboard, nil
	case "taxicab":
		return Taxicab, nil
	default:
		return 0, fmt.Errorf("distance metric %q: %w", name, ErrUnsupportedMetric)
	}
}

// Reduction selects how a score tensor is aggregated over its batch (axis 0)
// and class (axis 1) axes.
type Reduction int

// Supported reduction policies.
const (
	// ReduceNone passes scores through unchanged.
	ReduceNone Reduction = iota
	// ReduceMean averages over classes per batch row, then over the batch.
	ReduceMean
	// ReduceSum sums jointly over batch and class axes.
	ReduceSum
	// ReduceMeanBatch averages over the batch axis only.
	ReduceMeanBatch
	// ReduceSumBatch sums over the batch axis only.
	ReduceSumBatch
	// ReduceMeanChannel averages over the class axis only.
	ReduceMeanChannel
	// ReduceSumChannel sums over the class axis only.
	ReduceSumChannel
)

// String returns the reduction's wire name.
func (r Reduction) String() string {
	switch r {
	case ReduceNone:
		return "none"
	case ReduceMean:
		return "mean"
	case ReduceSum:
		return "sum"
	case ReduceMeanBatch:
		return "mean_batch"
	case ReduceSumBatch:
		return "sum_batch"
	case ReduceMeanChannel:
		return "mean_channel"
	case ReduceSumChannel:
		return "sum_channel"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// ParseReduction converts a reduction name to its Reduction value.
func ParseReduction(name string) (Reduction, error) {
	switch name {
	case "none":
		return ReduceNone, nil
	case "mean":
		return ReduceMean, nil
	case "sum":
		return ReduceSum, nil
	case "mean_batch":
		return ReduceMeanBatch, nil
	case "sum_batch":
		return ReduceSumBatch, nil
	case "mean_channel":
		return ReduceMeanChannel, nil
	case "sum_channel":
		return ReduceSumChannel, nil
	default:
		return 0, fmt.Errorf("reduction %q: %w", name, ErrUnsupportedReduction)
	}
}
