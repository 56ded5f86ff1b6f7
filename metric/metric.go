// Copyright 2026 SegMed ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metric provides the public API for boundary-based segmentation
// metrics over N-dimensional masks.
//
// The package exposes the engine's core operations:
//   - MaskEdges / LabelFieldEdges: boundary extraction via erosion + XOR
//   - SurfaceDistance: empirical surface-distance distribution of two boundaries
//   - HausdorffDistance / AverageSurfaceDistance: per-pair aggregates
//   - Reduce: NaN-aware aggregation of [batch, class, ...] score tensors
//
// Example:
//
//	pred, _ := metric.MaskFromSlice(predVoxels, metric.Shape{64, 64, 32})
//	gt, _ := metric.MaskFromSlice(gtVoxels, metric.Shape{64, 64, 32})
//	edgesPred, edgesGt, _ := metric.MaskEdges(pred, gt, true)
//	sample, _ := metric.SurfaceDistance(edgesPred, edgesGt, metric.Euclidean)
package metric

import (
	"github.com/segmed-ml/segmed/internal/metric"
	"github.com/segmed-ml/segmed/internal/ndarray"
)

// Type aliases for the public API

// Shape represents the dimensions of an N-dimensional array.
// Example: Shape{2, 3, 4} is a 3D volume with dimensions 2×3×4.
type Shape = ndarray.Shape

// Mask is a dense boolean N-dimensional array in row-major layout.
type Mask = ndarray.Mask

// IntField is a dense integer labelfield; binarize it against a label index.
type IntField = ndarray.IntField

// Array is a dense float64 N-dimensional array. Score tensors use NaN to mark
// undefined entries.
type Array = ndarray.Array

// DistanceMetric selects how the surface distance field is computed.
type DistanceMetric = metric.DistanceMetric

// Supported distance metrics.
const (
	Euclidean  DistanceMetric = metric.Euclidean
	Chessboard DistanceMetric = metric.Chessboard
	Taxicab    DistanceMetric = metric.Taxicab
)

// Reduction selects how a score tensor is aggregated over its batch and class axes.
type Reduction = metric.Reduction

// Supported reduction policies.
const (
	ReduceNone        Reduction = metric.ReduceNone
	ReduceMean        Reduction = metric.ReduceMean
	ReduceSum         Reduction = metric.ReduceSum
	ReduceMeanBatch   Reduction = metric.ReduceMeanBatch
	ReduceSumBatch    Reduction = metric.ReduceSumBatch
	ReduceMeanChannel Reduction = metric.ReduceMeanChannel
	ReduceSumChannel  Reduction = metric.ReduceSumChannel
)

// Sentinel errors.
var (
	ErrShapeMismatch        = metric.ErrShapeMismatch
	ErrUnsupportedMetric    = metric.ErrUnsupportedMetric
	ErrUnsupportedReduction = metric.ErrUnsupportedReduction
)

// Construction

// NewMask creates an all-false mask with the given shape.
func NewMask(shape Shape) (*Mask, error) {
	return ndarray.NewMask(shape)
}

// MaskFromSlice creates a mask backed by a copy of data, interpreted row-major.
func MaskFromSlice(data []bool, shape Shape) (*Mask, error) {
	return ndarray.MaskFromSlice(data, shape)
}

// IntFieldFromSlice creates a labelfield backed by a copy of data.
func IntFieldFromSlice(data []int, shape Shape) (*IntField, error) {
	return ndarray.IntFieldFromSlice(data, shape)
}

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	return ndarray.NewArray(shape)
}

// ArrayFromSlice creates an array backed by a copy of data, interpreted row-major.
func ArrayFromSlice(data []float64, shape Shape) (*Array, error) {
	return ndarray.ArrayFromSlice(data, shape)
}

// Parsing

// ParseDistanceMetric converts a metric name ("euclidean", "chessboard",
// "taxicab") to its DistanceMetric value.
func ParseDistanceMetric(name string) (DistanceMetric, error) {
	return metric.ParseDistanceMetric(name)
}

// ParseReduction converts a reduction name ("none", "mean", "sum",
// "mean_batch", "sum_batch", "mean_channel", "sum_channel") to its
// Reduction value.
func ParseReduction(name string) (Reduction, error) {
	return metric.ParseReduction(name)
}

// Operations

// MaskEdges extracts the one-voxel-thick boundary of each mask via one binary
// erosion step XORed with the original. With crop enabled, both masks are
// first cropped to the bounding box of their union.
func MaskEdges(pred, gt *Mask, crop bool) (edgesPred, edgesGt *Mask, err error) {
	return metric.MaskEdges(pred, gt, crop)
}

// LabelFieldEdges binarizes two labelfields against labelIdx and extracts
// their boundaries with MaskEdges.
func LabelFieldEdges(pred, gt *IntField, labelIdx int, crop bool) (edgesPred, edgesGt *Mask, err error) {
	return metric.LabelFieldEdges(pred, gt, labelIdx, crop)
}

// SurfaceDistance samples, for every true voxel of edgesPred, the distance to
// the nearest true voxel of edgesGt under the chosen metric, in row-major
// order of edgesPred.
func SurfaceDistance(edgesPred, edgesGt *Mask, distanceMetric DistanceMetric) ([]float64, error) {
	return metric.SurfaceDistance(edgesPred, edgesGt, distanceMetric)
}

// HausdorffDistance aggregates the surface-distance sample into its maximum
// or, when 0 < percentile < 100, its empirical percentile. The non-directed
// form takes the worse of the two directions.
func HausdorffDistance(edgesPred, edgesGt *Mask, distanceMetric DistanceMetric, percentile float64, directed bool) (float64, error) {
	return metric.HausdorffDistance(edgesPred, edgesGt, distanceMetric, percentile, directed)
}

// AverageSurfaceDistance aggregates the surface-distance sample into its mean;
// the symmetric form pools both directions.
func AverageSurfaceDistance(edgesPred, edgesGt *Mask, distanceMetric DistanceMetric, symmetric bool) (float64, error) {
	return metric.AverageSurfaceDistance(edgesPred, edgesGt, distanceMetric, symmetric)
}

// Reduce aggregates a [batch, class, ...] score tensor under the given
// reduction policy. NaN entries are zeroed IN PLACE and excluded from every
// aggregate; the returned not-nans tensor counts the contributions per output
// cell so a caller can tell a true zero from "nothing contributed".
func Reduce(scores *Array, reduction Reduction) (reduced, notNans *Array, err error) {
	return metric.Reduce(scores, reduction)
}

// IgnoreBackground removes the background channel (class index 0 on axis 1)
// from pred and gt score tensors when the class axis has more than one channel.
func IgnoreBackground(pred, gt *Array) (*Array, *Array, error) {
	return metric.IgnoreBackground(pred, gt)
}
