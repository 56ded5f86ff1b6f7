package ndimage

import (
	"math"

	"github.com/segmed-ml/segmed/internal/ndarray"
)

// DistanceTransformEDT computes the exact Euclidean distance transform of the
// mask: for every true voxel, the distance to the nearest false voxel; zero at
// false voxels. When the mask has no false voxel every entry is +Inf.
//
// Uses the Felzenszwalb-Huttenlocher separable squared-distance transform: a
// lower-envelope-of-parabolas sweep along each axis in turn, then a final
// square root.
func DistanceTransformEDT(m *ndarray.Mask) *ndarray.Array {
	shape := m.Shape()
	rank := len(shape)

	d2, _ := ndarray.NewArray(shape)
	data := d2.Data()
	for i, v := range m.Data() {
		if v {
			data[i] = math.Inf(1)
		}
	}

	strides := d2.Strides()
	for axis := 0; axis < rank; axis++ {
		n := shape[axis]
		if n == 1 {
			continue
		}
		line := make([]float64, n)
		out := make([]float64, n)
		v := make([]int, n)
		z := make([]float64, n+1)

		forEachLine(shape, strides, axis, func(base int) {
			stride := strides[axis]
			for i := 0; i < n; i++ {
				line[i] = data[base+i*stride]
			}
			envelopeTransform(line, out, v, z)
			for i := 0; i < n; i++ {
				data[base+i*stride] = out[i]
			}
		})
	}

	for i := range data {
		data[i] = math.Sqrt(data[i])
	}
	return d2
}

// envelopeTransform computes the 1-D squared-distance transform of f into d:
// d[p] = min_q (p-q)^2 + f[q]. Parabolas rooted at +Inf never enter the lower
// envelope and are skipped; an all-Inf line stays all-Inf.
func envelopeTransform(f, d []float64, v []int, z []float64) {
	n := len(f)
	k := -1
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		var s float64
		for {
			if k < 0 {
				break
			}
			s = ((f[q] + float64(q*q)) - (f[v[k]] + float64(v[k]*v[k]))) / float64(2*q-2*v[k])
			if s > z[k] {
				break
			}
			k--
		}
		k++
		v[k] = q
		z[k] = math.Inf(-1)
		if k > 0 {
			z[k] = s
		}
		z[k+1] = math.Inf(1)
	}

	if k < 0 {
		for p := 0; p < n; p++ {
			d[p] = math.Inf(1)
		}
		return
	}

	j := 0
	for p := 0; p < n; p++ {
		for z[j+1] < float64(p) {
			j++
		}
		dp := p - v[j]
		d[p] = float64(dp*dp) + f[v[j]]
	}
}

// forEachLine invokes fn with the base offset of every 1-D line along axis.
func forEachLine(shape ndarray.Shape, strides []int, axis int, fn func(base int)) {
	rank := len(shape)
	idx := make([]int, rank)
	for {
		base := 0
		for a := 0; a < rank; a++ {
			base += idx[a] * strides[a]
		}
		fn(base)

		a := rank - 1
		for a >= 0 {
			if a == axis {
				a--
				continue
			}
			idx[a]++
			if idx[a] < shape[a] {
				break
			}
			idx[a] = 0
			a--
		}
		if a < 0 {
			return
		}
	}
}
