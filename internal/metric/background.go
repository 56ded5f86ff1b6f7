package metric

import (
	"fmt"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// IgnoreBackground removes the background channel (class index 0 on axis 1)
// from pred and gt score tensors. A tensor whose class axis has a single
// channel is returned unchanged: there is no separate background to drop.
func IgnoreBackground(pred, gt *ndarray.Array) (*ndarray.Array, *ndarray.Array, error) {
	p, err := dropBackground(pred)
	if err != nil {
		return nil, nil, err
	}
	g, err := dropBackground(gt)
	if err != nil {
		return nil, nil, err
	}
	return p, g, nil
}

func dropBackground(a *ndarray.Array) (*ndarray.Array, error) {
	shape := a.Shape()
	if len(shape) < 2 {
		return nil, fmt.Errorf("tensor rank %d, need at least [batch, class]: %w",
			len(shape), ErrShapeMismatch)
	}
	if shape[1] <= 1 {
		return a, nil
	}

	outShape := shape.Clone()
	outShape[1] = shape[1] - 1
	out, _ := ndarray.NewArray(outShape)

	inner := 1
	for _, d := range shape[2:] {
		inner *= d
	}
	in := a.Data()
	res := out.Data()
	for b := 0; b < shape[0]; b++ {
		src := (b*shape[1] + 1) * inner
		dst := b * outShape[1] * inner
		copy(res[dst:dst+outShape[1]*inner], in[src:src+outShape[1]*inner])
	}
	return out, nil
}
