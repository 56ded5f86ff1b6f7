package ndarray

import "fmt"

// IntField is a dense integer labelfield in row-major layout.
// Each voxel holds a class label; Equal binarizes the field against one label.
type IntField struct {
	shape Shape
	data  []int
}

// IntFieldFromSlice creates a labelfield backed by a copy of data.
func IntFieldFromSlice(data []int, shape Shape) (*IntField, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	f := &IntField{
		shape: shape.Clone(),
		data:  make([]int, len(data)),
	}
	copy(f.data, data)
	return f, nil
}

// Shape returns the labelfield's shape.
func (f *IntField) Shape() Shape {
	return f.shape
}

// NumElements returns the total number of voxels.
func (f *IntField) NumElements() int {
	return len(f.data)
}

// Data returns the underlying flat storage.
func (f *IntField) Data() []int {
	return f.data
}

// Equal returns the binary mask of voxels whose label equals label.
func (f *IntField) Equal(label int) *Mask {
	m, _ := NewMask(f.shape)
	for i, v := range f.data {
		m.data[i] = v == label
	}
	return m
}
