package metric

import (
	"fmt"
	"math"

	"github.com/segmed-ml/segmed/internal/ndarray"
	"github.com/segmed-ml/segmed/internal/ndimage"
)

// SurfaceDistance samples, for every true voxel of edgesPred, the distance to
// the nearest true voxel of edgesGt under the chosen metric. Samples are
// returned in row-major order of edgesPred, so downstream percentile and max
// computations are reproducible.
//
// Edge cases follow the usual surface-metric conventions: an empty edgesPred
// yields an empty sample (nothing to measure), and an empty edgesGt yields
// +Inf for every predicted boundary voxel.
func SurfaceDistance(edgesPred, edgesGt *ndarray.Mask, metric DistanceMetric) ([]float64, error) {
	if edgesPred.NumElements() == 0 || !edgesPred.Shape().Equal(edgesGt.Shape()) {
		return nil, fmt.Errorf("edge shapes %v vs %v: %w",
			edgesPred.Shape(), edgesGt.Shape(), ErrShapeMismatch)
	}

	if !edgesPred.Any() {
		return []float64{}, nil
	}
	if !edgesGt.Any() {
		sample := make([]float64, edgesPred.CountTrue())
		for i := range sample {
			sample[i] = math.Inf(1)
		}
		return sample, nil
	}

	var dist *ndarray.Array
	switch metric {
	case Euclidean:
		dist = ndimage.DistanceTransformEDT(edgesGt.Not())
	case Chessboard:
		dist = ndimage.DistanceTransformCDT(edgesGt.Not(), ndimage.Chessboard)
	case Taxicab:
		dist = ndimage.DistanceTransformCDT(edgesGt.Not(), ndimage.Taxicab)
	default:
		return nil, fmt.Errorf("distance metric %s: %w", metric, ErrUnsupportedMetric)
	}

	sample := make([]float64, 0, edgesPred.CountTrue())
	distData := dist.Data()
	for i, v := range edgesPred.Data() {
		if v {
			sample = append(sample, distData[i])
		}
	}
	return sample, nil
}
