package ndimage

import (
	"math"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// ChamferMetric selects the per-step cost of the chamfer distance transform.
type ChamferMetric int

const (
	// Chessboard uses the full 3^N-1 neighborhood with unit step cost, so the
	// distance between voxels is the maximum coordinate difference.
	Chessboard ChamferMetric = iota
	// Taxicab uses only the 2N face neighbors with unit step cost, so the
	// distance between voxels is the sum of coordinate differences.
	Taxicab
)

// DistanceTransformCDT computes the chamfer (grid) distance transform of the
// mask: for every true voxel, the grid distance to the nearest false voxel
// under the chosen metric; zero at false voxels. When the mask has no false
// voxel every entry is +Inf.
//
// The transform is the classic two-pass raster scan: a forward pass
// propagating from causal neighbors, a backward pass from anti-causal ones.
func DistanceTransformCDT(m *ndarray.Mask, metric ChamferMetric) *ndarray.Array {
	shape := m.Shape()
	rank := len(shape)

	d, _ := ndarray.NewArray(shape)
	data := d.Data()
	for i, v := range m.Data() {
		if v {
			data[i] = math.Inf(1)
		}
	}

	offsets := neighborOffsets(rank, metric == Chessboard)
	causal := causalOffsets(offsets)
	strides := d.Strides()

	// Forward pass.
	idx := make([]int, rank)
	for flat := 0; flat < len(data); flat++ {
		relaxNeighbors(data, strides, shape, idx, flat, causal)
		advanceIndex(idx, shape)
	}

	// Backward pass with mirrored offsets.
	anticausal := negateOffsets(causal)
	for i := range idx {
		idx[i] = shape[i] - 1
	}
	for flat := len(data) - 1; flat >= 0; flat-- {
		relaxNeighbors(data, strides, shape, idx, flat, anticausal)
		retreatIndex(idx, shape)
	}
	return d
}

func relaxNeighbors(data []float64, strides []int, shape ndarray.Shape, idx []int, flat int, offsets [][]int) {
	for _, off := range offsets {
		nFlat := 0
		inside := true
		for axis, x := range idx {
			n := x + off[axis]
			if n < 0 || n >= shape[axis] {
				inside = false
				break
			}
			nFlat += n * strides[axis]
		}
		if !inside {
			continue
		}
		if d := data[nFlat] + 1; d < data[flat] {
			data[flat] = d
		}
	}
}

// causalOffsets keeps the offsets that precede the current voxel in row-major
// scan order (first nonzero component negative).
func causalOffsets(offsets [][]int) [][]int {
	var out [][]int
	for _, off := range offsets {
		for _, v := range off {
			if v != 0 {
				if v < 0 {
					out = append(out, off)
				}
				break
			}
		}
	}
	return out
}

func negateOffsets(offsets [][]int) [][]int {
	out := make([][]int, len(offsets))
	for i, off := range offsets {
		neg := make([]int, len(off))
		for a, v := range off {
			neg[a] = -v
		}
		out[i] = neg
	}
	return out
}

// retreatIndex steps idx to the previous multi-index in row-major order.
func retreatIndex(idx []int, shape ndarray.Shape) {
	for axis := len(idx) - 1; axis >= 0; axis-- {
		idx[axis]--
		if idx[axis] >= 0 {
			return
		}
		idx[axis] = shape[axis] - 1
	}
}
