package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// filledBlock returns a size x size mask with a true block over [r0,r1) x [c0,c1).
func filledBlock(t *testing.T, size, r0, r1, c0, c1 int) *ndarray.Mask {
	t.Helper()
	m, err := ndarray.NewMask(ndarray.Shape{size, size})
	require.NoError(t, err)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			m.Set(true, r, c)
		}
	}
	return m
}

func TestMaskEdges_ShellOfBlock(t *testing.T) {
	pred := filledBlock(t, 7, 1, 6, 1, 6)
	gt := filledBlock(t, 7, 2, 5, 2, 5)

	edgesPred, edgesGt, err := MaskEdges(pred, gt, false)
	require.NoError(t, err)

	// 5x5 block: 25 voxels, 3x3 interior survives erosion, 16 shell voxels.
	assert.Equal(t, 16, edgesPred.CountTrue())
	// 3x3 block: 9 voxels, 1 interior voxel, 8 shell voxels.
	assert.Equal(t, 8, edgesGt.CountTrue())
}

func TestMaskEdges_EdgesAreSubsetOfSource(t *testing.T) {
	pred := filledBlock(t, 6, 0, 4, 1, 5)
	gt := filledBlock(t, 6, 2, 6, 0, 3)

	edgesPred, edgesGt, err := MaskEdges(pred, gt, false)
	require.NoError(t, err)

	for i, v := range edgesPred.Data() {
		if v {
			assert.True(t, pred.Data()[i], "edge voxel %d outside pred", i)
		}
	}
	for i, v := range edgesGt.Data() {
		if v {
			assert.True(t, gt.Data()[i], "edge voxel %d outside gt", i)
		}
	}
}

func TestMaskEdges_ShapeMismatch(t *testing.T) {
	pred, _ := ndarray.NewMask(ndarray.Shape{3, 3})
	gt, _ := ndarray.NewMask(ndarray.Shape{3, 4})

	_, _, err := MaskEdges(pred, gt, true)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMaskEdges_EmptyUnionShortCircuits(t *testing.T) {
	pred, _ := ndarray.NewMask(ndarray.Shape{4, 4})
	gt, _ := ndarray.NewMask(ndarray.Shape{4, 4})

	edgesPred, edgesGt, err := MaskEdges(pred, gt, true)
	require.NoError(t, err)

	assert.True(t, edgesPred.Shape().Equal(ndarray.Shape{4, 4}), "original shape preserved")
	assert.True(t, edgesGt.Shape().Equal(ndarray.Shape{4, 4}))
	assert.False(t, edgesPred.Any())
	assert.False(t, edgesGt.Any())
}

func TestMaskEdges_CropUsesUnionBox(t *testing.T) {
	pred := filledBlock(t, 10, 1, 4, 1, 4)
	gt := filledBlock(t, 10, 2, 6, 3, 7)

	edgesPred, edgesGt, err := MaskEdges(pred, gt, true)
	require.NoError(t, err)

	// Union spans rows [1,6) and cols [1,7): both edges share the cropped shape.
	assert.True(t, edgesPred.Shape().Equal(ndarray.Shape{5, 6}))
	assert.True(t, edgesGt.Shape().Equal(edgesPred.Shape()))
}

func TestMaskEdges_CropMatchesUncroppedCounts(t *testing.T) {
	// Far from the array border, cropping must not change which voxels are
	// boundary voxels, only the frame they live in.
	pred := filledBlock(t, 12, 3, 8, 3, 8)
	gt := filledBlock(t, 12, 4, 9, 4, 9)

	cropPred, cropGt, err := MaskEdges(pred, gt, true)
	require.NoError(t, err)
	fullPred, fullGt, err := MaskEdges(pred, gt, false)
	require.NoError(t, err)

	assert.Equal(t, fullPred.CountTrue(), cropPred.CountTrue())
	assert.Equal(t, fullGt.CountTrue(), cropGt.CountTrue())
}

func TestLabelFieldEdges_Binarizes(t *testing.T) {
	// Label 2 forms a 3x3 block; label 1 elsewhere must be ignored.
	data := make([]int, 36)
	field := func(r, c int) int { return r*6 + c }
	for r := 1; r < 4; r++ {
		for c := 1; c < 4; c++ {
			data[field(r, c)] = 2
		}
	}
	data[field(5, 5)] = 1

	pred, err := ndarray.IntFieldFromSlice(data, ndarray.Shape{6, 6})
	require.NoError(t, err)
	gt, err := ndarray.IntFieldFromSlice(data, ndarray.Shape{6, 6})
	require.NoError(t, err)

	edgesPred, edgesGt, err := LabelFieldEdges(pred, gt, 2, false)
	require.NoError(t, err)

	assert.Equal(t, 8, edgesPred.CountTrue(), "3x3 block has an 8-voxel shell")
	assert.Equal(t, 8, edgesGt.CountTrue())
	assert.False(t, edgesPred.At(5, 5), "label 1 voxel is background for label_idx 2")
}

func TestLabelFieldEdges_ShapeMismatch(t *testing.T) {
	pred, _ := ndarray.IntFieldFromSlice(make([]int, 9), ndarray.Shape{3, 3})
	gt, _ := ndarray.IntFieldFromSlice(make([]int, 12), ndarray.Shape{3, 4})

	_, _, err := LabelFieldEdges(pred, gt, 1, true)
	require.ErrorIs(t, err, ErrShapeMismatch)
}
