package metric

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// HausdorffDistance aggregates the surface-distance sample from edgesPred to
// edgesGt into a single value: the maximum, or the given percentile of the
// sample when 0 < percentile < 100. The symmetric (non-directed) form takes
// the worse of the two directions.
//
// An empty boundary on the sampled side makes the distance undefined and
// yields NaN, which the NaN-aware reducer then skips. A missing ground-truth
// boundary propagates +Inf through the sample.
func HausdorffDistance(edgesPred, edgesGt *ndarray.Mask, metric DistanceMetric, percentile float64, directed bool) (float64, error) {
	if percentile < 0 || percentile > 100 {
		return 0, fmt.Errorf("percentile %v must be in [0, 100]", percentile)
	}

	forward, err := SurfaceDistance(edgesPred, edgesGt, metric)
	if err != nil {
		return 0, err
	}
	d := samplePercentile(forward, percentile)
	if directed {
		return d, nil
	}

	backward, err := SurfaceDistance(edgesGt, edgesPred, metric)
	if err != nil {
		return 0, err
	}
	return math.Max(d, samplePercentile(backward, percentile)), nil
}

// AverageSurfaceDistance aggregates the surface-distance sample into its mean.
// The symmetric form averages over both directions' samples pooled together.
// An empty pooled sample yields NaN.
func AverageSurfaceDistance(edgesPred, edgesGt *ndarray.Mask, metric DistanceMetric, symmetric bool) (float64, error) {
	sample, err := SurfaceDistance(edgesPred, edgesGt, metric)
	if err != nil {
		return 0, err
	}
	if symmetric {
		backward, err := SurfaceDistance(edgesGt, edgesPred, metric)
		if err != nil {
			return 0, err
		}
		sample = append(sample, backward...)
	}
	if len(sample) == 0 {
		return math.NaN(), nil
	}
	return floats.Sum(sample) / float64(len(sample)), nil
}

// samplePercentile reduces a surface-distance sample to its max or, when
// 0 < p < 100, the empirical p-th percentile. Empty samples are undefined.
func samplePercentile(sample []float64, p float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}
	if p <= 0 || p >= 100 {
		return floats.Max(sample)
	}
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	return stat.Quantile(p/100, stat.Empirical, sorted, nil)
}
