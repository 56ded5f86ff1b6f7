package ndarray

import "fmt"

// BoundingBox returns the tightest axis-aligned box enclosing the true voxels
// of the mask, as (start, end) coordinate vectors with start inclusive and end
// exclusive. The mask must contain at least one true voxel; callers handle the
// empty case before calling.
func BoundingBox(m *Mask) (start, end []int, err error) {
	rank := len(m.shape)
	start = make([]int, rank)
	end = make([]int, rank)
	for axis := 0; axis < rank; axis++ {
		start[axis] = m.shape[axis]
		end[axis] = 0
	}

	found := false
	idx := make([]int, rank)
	for flat := range m.data {
		if m.data[flat] {
			found = true
			for axis := 0; axis < rank; axis++ {
				if idx[axis] < start[axis] {
					start[axis] = idx[axis]
				}
				if idx[axis]+1 > end[axis] {
					end[axis] = idx[axis] + 1
				}
			}
		}
		nextIndex(idx, m.shape)
	}
	if !found {
		return nil, nil, fmt.Errorf("bounding box of an empty mask is undefined")
	}
	return start, end, nil
}

// Crop returns a copy of the sub-mask within [start, end) per axis.
func Crop(m *Mask, start, end []int) (*Mask, error) {
	rank := len(m.shape)
	if len(start) != rank || len(end) != rank {
		return nil, fmt.Errorf("crop bounds rank %d/%d does not match mask rank %d",
			len(start), len(end), rank)
	}
	outShape := make(Shape, rank)
	for axis := 0; axis < rank; axis++ {
		if start[axis] < 0 || end[axis] > m.shape[axis] || start[axis] >= end[axis] {
			return nil, fmt.Errorf("invalid crop range [%d, %d) on axis %d of shape %v",
				start[axis], end[axis], axis, m.shape)
		}
		outShape[axis] = end[axis] - start[axis]
	}

	out, err := NewMask(outShape)
	if err != nil {
		return nil, err
	}
	srcIdx := make([]int, rank)
	idx := make([]int, rank)
	for flat := range out.data {
		for axis := 0; axis < rank; axis++ {
			srcIdx[axis] = start[axis] + idx[axis]
		}
		out.data[flat] = m.data[flatIndex(m.stride, srcIdx)]
		nextIndex(idx, outShape)
	}
	return out, nil
}
