package ndarray

import "fmt"

// Mask is a dense boolean N-dimensional array in row-major layout.
type Mask struct {
	shape  Shape
	stride []int
	data   []bool
}

// NewMask creates an all-false mask with the given shape.
func NewMask(shape Shape) (*Mask, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Mask{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]bool, shape.NumElements()),
	}, nil
}

// MaskFromSlice creates a mask backed by a copy of data, interpreted row-major.
func MaskFromSlice(data []bool, shape Shape) (*Mask, error) {
	m, err := NewMask(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(m.data, data)
	return m, nil
}

// Shape returns the mask's shape.
func (m *Mask) Shape() Shape {
	return m.shape
}

// Strides returns the mask's row-major memory strides.
func (m *Mask) Strides() []int {
	return m.stride
}

// NumElements returns the total number of voxels.
func (m *Mask) NumElements() int {
	return len(m.data)
}

// Data returns the underlying flat storage.
// Mutations through the slice are visible to the mask.
func (m *Mask) Data() []bool {
	return m.data
}

// At returns the value at the given multi-index.
func (m *Mask) At(idx ...int) bool {
	return m.data[flatIndex(m.stride, idx)]
}

// Set stores a value at the given multi-index.
func (m *Mask) Set(value bool, idx ...int) {
	m.data[flatIndex(m.stride, idx)] = value
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c, _ := NewMask(m.shape)
	copy(c.data, m.data)
	return c
}

// ZerosLike returns an all-false mask with the same shape.
func (m *Mask) ZerosLike() *Mask {
	c, _ := NewMask(m.shape)
	return c
}

// Any reports whether the mask contains at least one true voxel.
func (m *Mask) Any() bool {
	for _, v := range m.data {
		if v {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true voxels.
func (m *Mask) CountTrue() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Not returns the voxel-wise complement of the mask.
func (m *Mask) Not() *Mask {
	c, _ := NewMask(m.shape)
	for i, v := range m.data {
		c.data[i] = !v
	}
	return c
}

// Or returns the voxel-wise union of two masks of identical shape.
func (m *Mask) Or(other *Mask) (*Mask, error) {
	if !m.shape.Equal(other.shape) {
		return nil, fmt.Errorf("mask shapes do not match: %v vs %v", m.shape, other.shape)
	}
	c, _ := NewMask(m.shape)
	for i := range m.data {
		c.data[i] = m.data[i] || other.data[i]
	}
	return c, nil
}

// Xor returns the voxel-wise symmetric difference of two masks of identical shape.
func (m *Mask) Xor(other *Mask) (*Mask, error) {
	if !m.shape.Equal(other.shape) {
		return nil, fmt.Errorf("mask shapes do not match: %v vs %v", m.shape, other.shape)
	}
	c, _ := NewMask(m.shape)
	for i := range m.data {
		c.data[i] = m.data[i] != other.data[i]
	}
	return c, nil
}
