// Package ndarray provides the dense N-dimensional containers used by the
// segmentation metric engine: boolean masks, integer labelfields and float64
// score arrays, all stored row-major.
package ndarray

import "fmt"

// Shape represents the dimensions of an N-dimensional array.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// flatIndex converts a multi-index to a flat row-major offset.
// No bounds checking beyond rank; callers iterate within the shape.
func flatIndex(strides []int, idx []int) int {
	if len(idx) != len(strides) {
		panic(fmt.Sprintf("index rank %d does not match array rank %d", len(idx), len(strides)))
	}
	flat := 0
	for i, x := range idx {
		flat += x * strides[i]
	}
	return flat
}

// nextIndex advances idx to the next multi-index in row-major order.
// Returns false once idx wraps past the last element.
func nextIndex(idx []int, shape Shape) bool {
	for axis := len(idx) - 1; axis >= 0; axis-- {
		idx[axis]++
		if idx[axis] < shape[axis] {
			return true
		}
		idx[axis] = 0
	}
	return false
}
