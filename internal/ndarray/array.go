package ndarray

import "fmt"

// Array is a dense float64 N-dimensional array in row-major layout.
// Metric scores use NaN to mark undefined entries.
type Array struct {
	shape  Shape
	stride []int
	data   []float64
}

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}, nil
}

// ArrayFromSlice creates an array backed by a copy of data, interpreted row-major.
func ArrayFromSlice(data []float64, shape Shape) (*Array, error) {
	a, err := NewArray(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major memory strides.
func (a *Array) Strides() []int {
	return a.stride
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the underlying flat storage.
// Mutations through the slice are visible to the array.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the value at the given multi-index.
func (a *Array) At(idx ...int) float64 {
	return a.data[flatIndex(a.stride, idx)]
}

// Set stores a value at the given multi-index.
func (a *Array) Set(value float64, idx ...int) {
	a.data[flatIndex(a.stride, idx)] = value
}

// Fill sets every element to value.
func (a *Array) Fill(value float64) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	c, _ := NewArray(a.shape)
	copy(c.data, a.data)
	return c
}
