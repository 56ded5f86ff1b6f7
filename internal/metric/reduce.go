package metric

import (
	"fmt"
	"math"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// Reduce aggregates a score tensor of rank >= 2 with axis 0 = batch and
// axis 1 = class. NaN entries mark scores that are undefined for a
// (batch, class) pair (for example, the ground truth had no foreground of
// that class) and are excluded from every aggregate.
//
// Reduce first zeroes the NaN entries of scores IN PLACE and builds a 0/1
// not-nans indicator, then dispatches on the reduction policy. The returned
// not-nans tensor is reduced alongside the scores so callers can tell a true
// zero from "nothing contributed". Wherever a mean's not-nan count is 0 the
// output is 0, never a division by zero: every contribution was undefined, and
// 0 is the documented sentinel for that.
//
// The "mean" policy is deliberately two-stage (average over classes per batch
// row, then over batch rows); with uneven NaN patterns this differs from a
// joint mean over both axes.
func Reduce(scores *ndarray.Array, reduction Reduction) (reduced, notNans *ndarray.Array, err error) {
	shape := scores.Shape()
	if len(shape) < 2 {
		return nil, nil, fmt.Errorf("score tensor rank %d, need at least [batch, class]: %w",
			len(shape), ErrShapeMismatch)
	}

	// NaN bookkeeping happens before policy dispatch, so the in-place zeroing
	// is observable even when the policy is rejected.
	notNans, _ = ndarray.NewArray(shape)
	data := scores.Data()
	indicator := notNans.Data()
	for i, v := range data {
		if math.IsNaN(v) {
			data[i] = 0
		} else {
			indicator[i] = 1
		}
	}

	switch reduction {
	case ReduceNone:
		return scores, notNans, nil

	case ReduceMean:
		// Channel average per batch row, then batch average over the rows
		// that had at least one defined entry.
		notNans = sumAxis(notNans, 1)
		f := zeroGuardDiv(sumAxis(scores, 1), notNans)

		rows := indicatorOf(notNans)
		notNans = sumAxis(rows, 0)
		return zeroGuardDiv(sumAxis(f, 0), notNans), notNans, nil

	case ReduceSum:
		return sumAxis(sumAxis(scores, 0), 0), sumAxis(sumAxis(notNans, 0), 0), nil

	case ReduceMeanBatch:
		notNans = sumAxis(notNans, 0)
		return zeroGuardDiv(sumAxis(scores, 0), notNans), notNans, nil

	case ReduceSumBatch:
		return sumAxis(scores, 0), sumAxis(notNans, 0), nil

	case ReduceMeanChannel:
		notNans = sumAxis(notNans, 1)
		return zeroGuardDiv(sumAxis(scores, 1), notNans), notNans, nil

	case ReduceSumChannel:
		return sumAxis(scores, 1), sumAxis(notNans, 1), nil

	default:
		return nil, nil, fmt.Errorf("reduction %s: %w", reduction, ErrUnsupportedReduction)
	}
}

// sumAxis sums the array along one axis, dropping it from the shape.
// Summing a rank-1 array yields a rank-0 scalar array.
func sumAxis(a *ndarray.Array, axis int) *ndarray.Array {
	shape := a.Shape()
	outShape := make(ndarray.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:axis]...)
	outShape = append(outShape, shape[axis+1:]...)

	out, _ := ndarray.NewArray(outShape)
	outer := 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	inner := 1
	for _, d := range shape[axis+1:] {
		inner *= d
	}
	n := shape[axis]

	in := a.Data()
	res := out.Data()
	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			base := (o*n + k) * inner
			outBase := o * inner
			for i := 0; i < inner; i++ {
				res[outBase+i] += in[base+i]
			}
		}
	}
	return out
}

// zeroGuardDiv divides num by den element-wise, writing 0 where den is 0.
func zeroGuardDiv(num, den *ndarray.Array) *ndarray.Array {
	out, _ := ndarray.NewArray(num.Shape())
	n := num.Data()
	d := den.Data()
	res := out.Data()
	for i := range n {
		if d[i] > 0 {
			res[i] = n[i] / d[i]
		}
	}
	return out
}

// indicatorOf returns a same-shape 0/1 array marking the positive entries.
func indicatorOf(a *ndarray.Array) *ndarray.Array {
	out, _ := ndarray.NewArray(a.Shape())
	res := out.Data()
	for i, v := range a.Data() {
		if v > 0 {
			res[i] = 1
		}
	}
	return out
}
