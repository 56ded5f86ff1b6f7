package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmed-ml/segmed/metric"
)

// disk builds a size x size mask holding a disk of the given radius centered
// at (cx, cy).
func disk(t *testing.T, size int, cx, cy, radius float64) *metric.Mask {
	t.Helper()
	m, err := metric.NewMask(metric.Shape{size, size})
	require.NoError(t, err)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Sqrt(dx*dx+dy*dy) <= radius {
				m.Set(true, x, y)
			}
		}
	}
	return m
}

func TestPipeline_IdenticalMasks(t *testing.T) {
	pred := disk(t, 32, 16, 16, 8)
	gt := disk(t, 32, 16, 16, 8)

	edgesPred, edgesGt, err := metric.MaskEdges(pred, gt, true)
	require.NoError(t, err)
	require.True(t, edgesPred.Any())

	sample, err := metric.SurfaceDistance(edgesPred, edgesGt, metric.Euclidean)
	require.NoError(t, err)
	for _, v := range sample {
		assert.Zero(t, v)
	}

	hd, err := metric.HausdorffDistance(edgesPred, edgesGt, metric.Euclidean, 0, false)
	require.NoError(t, err)
	assert.Zero(t, hd)

	asd, err := metric.AverageSurfaceDistance(edgesPred, edgesGt, metric.Euclidean, true)
	require.NoError(t, err)
	assert.Zero(t, asd)
}

func TestPipeline_ShiftedMasksAreBounded(t *testing.T) {
	pred := disk(t, 32, 18, 16, 8)
	gt := disk(t, 32, 16, 16, 8)

	edgesPred, edgesGt, err := metric.MaskEdges(pred, gt, true)
	require.NoError(t, err)

	hd, err := metric.HausdorffDistance(edgesPred, edgesGt, metric.Euclidean, 0, false)
	require.NoError(t, err)
	assert.Greater(t, hd, 0.0)
	assert.LessOrEqual(t, hd, 4.0, "a 2-voxel shift cannot move boundaries further than a few voxels")

	asd, err := metric.AverageSurfaceDistance(edgesPred, edgesGt, metric.Euclidean, true)
	require.NoError(t, err)
	assert.Greater(t, asd, 0.0)
	assert.Less(t, asd, hd)
}

func TestPipeline_CropDoesNotChangeScores(t *testing.T) {
	pred := disk(t, 40, 20, 22, 6)
	gt := disk(t, 40, 20, 20, 6)

	cropPred, cropGt, err := metric.MaskEdges(pred, gt, true)
	require.NoError(t, err)
	fullPred, fullGt, err := metric.MaskEdges(pred, gt, false)
	require.NoError(t, err)

	cropHD, err := metric.HausdorffDistance(cropPred, cropGt, metric.Euclidean, 0, false)
	require.NoError(t, err)
	fullHD, err := metric.HausdorffDistance(fullPred, fullGt, metric.Euclidean, 0, false)
	require.NoError(t, err)

	assert.InDelta(t, fullHD, cropHD, 1e-12)
}

func TestPipeline_ScoresThroughReduction(t *testing.T) {
	scores, err := metric.ArrayFromSlice([]float64{
		0.5, math.NaN(),
		1.5, 2.5,
	}, metric.Shape{2, 2})
	require.NoError(t, err)

	reduced, notNans, err := metric.Reduce(scores, metric.ReduceMean)
	require.NoError(t, err)

	// Row means 0.5 and 2.0 average to 1.25 over two contributing rows.
	assert.InDelta(t, 1.25, reduced.Data()[0], 1e-12)
	assert.InDelta(t, 2.0, notNans.Data()[0], 1e-12)
}

func TestPipeline_LabelFieldEntryPoint(t *testing.T) {
	labels := make([]int, 64)
	for r := 2; r < 6; r++ {
		for c := 2; c < 6; c++ {
			labels[r*8+c] = 3
		}
	}
	pred, err := metric.IntFieldFromSlice(labels, metric.Shape{8, 8})
	require.NoError(t, err)
	gt, err := metric.IntFieldFromSlice(labels, metric.Shape{8, 8})
	require.NoError(t, err)

	edgesPred, edgesGt, err := metric.LabelFieldEdges(pred, gt, 3, true)
	require.NoError(t, err)

	sample, err := metric.SurfaceDistance(edgesPred, edgesGt, metric.Chessboard)
	require.NoError(t, err)
	require.NotEmpty(t, sample)
	for _, v := range sample {
		assert.Zero(t, v)
	}
}

func TestParseEntryPoints(t *testing.T) {
	m, err := metric.ParseDistanceMetric("taxicab")
	require.NoError(t, err)
	assert.Equal(t, metric.Taxicab, m)

	r, err := metric.ParseReduction("sum_channel")
	require.NoError(t, err)
	assert.Equal(t, metric.ReduceSumChannel, r)

	_, err = metric.ParseReduction("bogus")
	assert.ErrorIs(t, err, metric.ErrUnsupportedReduction)
}
