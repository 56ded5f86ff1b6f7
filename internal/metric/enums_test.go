package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistanceMetric_RoundTrip(t *testing.T) {
	for _, m := range []DistanceMetric{Euclidean, Chessboard, Taxicab} {
		parsed, err := ParseDistanceMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseDistanceMetric_Unknown(t *testing.T) {
	_, err := ParseDistanceMetric("manhattan")
	require.ErrorIs(t, err, ErrUnsupportedMetric)
	assert.Contains(t, err.Error(), "manhattan")
}

func TestParseReduction_RoundTrip(t *testing.T) {
	reductions := []Reduction{
		ReduceNone, ReduceMean, ReduceSum,
		ReduceMeanBatch, ReduceSumBatch,
		ReduceMeanChannel, ReduceSumChannel,
	}
	for _, r := range reductions {
		parsed, err := ParseReduction(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestParseReduction_Unknown(t *testing.T) {
	_, err := ParseReduction("bogus")
	require.ErrorIs(t, err, ErrUnsupportedReduction)
	assert.Contains(t, err.Error(), "bogus")
	assert.Contains(t, err.Error(), "mean_batch", "error lists the valid options")
}
