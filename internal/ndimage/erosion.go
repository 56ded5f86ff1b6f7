// Package ndimage implements the grid-image numerical kernels the metric
// engine builds on: binary erosion and distance transforms over dense
// N-dimensional masks. The algorithms match the conventions of the classic
// image-processing implementations: the region outside the array is background,
// and distances are measured to the nearest zero voxel of the input.
package ndimage

import (
	"github.com/segmed-ml/segmed/internal/ndarray"
)

// BinaryErosion applies one erosion step with full connectivity: a voxel
// survives only if every neighbor in its 3^N neighborhood (diagonals included)
// is foreground. Voxels on the array border always erode, since the outside
// counts as background.
func BinaryErosion(m *ndarray.Mask) *ndarray.Mask {
	shape := m.Shape()
	rank := len(shape)
	offsets := neighborOffsets(rank, true)

	out := m.ZerosLike()
	in := m.Data()
	outData := out.Data()
	strides := m.Strides()

	idx := make([]int, rank)
	for flat := range in {
		if in[flat] {
			outData[flat] = erodeSurvives(in, strides, shape, idx, offsets)
		}
		advanceIndex(idx, shape)
	}
	return out
}

func erodeSurvives(in []bool, strides []int, shape ndarray.Shape, idx []int, offsets [][]int) bool {
	for _, off := range offsets {
		flat := 0
		for axis, x := range idx {
			n := x + off[axis]
			if n < 0 || n >= shape[axis] {
				return false // outside the array is background
			}
			flat += n * strides[axis]
		}
		if !in[flat] {
			return false
		}
	}
	return true
}

// neighborOffsets enumerates the nonzero offsets of the 3^N neighborhood.
// With diagonals=false only the 2N face neighbors are returned.
func neighborOffsets(rank int, diagonals bool) [][]int {
	var offsets [][]int
	if !diagonals {
		for axis := 0; axis < rank; axis++ {
			for _, d := range []int{-1, 1} {
				off := make([]int, rank)
				off[axis] = d
				offsets = append(offsets, off)
			}
		}
		return offsets
	}

	off := make([]int, rank)
	for i := range off {
		off[i] = -1
	}
	for {
		zero := true
		for _, v := range off {
			if v != 0 {
				zero = false
				break
			}
		}
		if !zero {
			offsets = append(offsets, append([]int(nil), off...))
		}
		axis := rank - 1
		for axis >= 0 {
			off[axis]++
			if off[axis] <= 1 {
				break
			}
			off[axis] = -1
			axis--
		}
		if axis < 0 {
			break
		}
	}
	return offsets
}

// advanceIndex steps idx to the next multi-index in row-major order,
// wrapping to zeros after the last element.
func advanceIndex(idx []int, shape ndarray.Shape) {
	for axis := len(idx) - 1; axis >= 0; axis-- {
		idx[axis]++
		if idx[axis] < shape[axis] {
			return
		}
		idx[axis] = 0
	}
}
