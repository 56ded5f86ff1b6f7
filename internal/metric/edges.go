package metric

import (
	"fmt"

	"github.com/segmed-ml/segmed/internal/ndarray"
	"github.com/segmed-ml/segmed/internal/ndimage"
)

// MaskEdges extracts the one-voxel-thick boundary of each mask: one binary
// erosion step followed by XOR with the original, leaving only the exterior
// shell. The two masks must share a shape; they are assumed to occupy the same
// space (spacing, orientation).
//
// With crop enabled, both masks are first cropped to the bounding box of their
// union so erosion and the downstream distance transform only touch the
// foreground region. The shared box keeps the two crops aligned. If the union
// is empty, two all-false masks of the original shape are returned without
// computing a degenerate box.
func MaskEdges(pred, gt *ndarray.Mask, crop bool) (edgesPred, edgesGt *ndarray.Mask, err error) {
	if pred.NumElements() == 0 || !pred.Shape().Equal(gt.Shape()) {
		return nil, nil, fmt.Errorf("pred shape %v vs gt shape %v: %w",
			pred.Shape(), gt.Shape(), ErrShapeMismatch)
	}

	if crop {
		union, orErr := pred.Or(gt)
		if orErr != nil {
			return nil, nil, orErr
		}
		if !union.Any() {
			return pred.ZerosLike(), gt.ZerosLike(), nil
		}
		start, end, boxErr := ndarray.BoundingBox(union)
		if boxErr != nil {
			return nil, nil, boxErr
		}
		if pred, err = ndarray.Crop(pred, start, end); err != nil {
			return nil, nil, err
		}
		if gt, err = ndarray.Crop(gt, start, end); err != nil {
			return nil, nil, err
		}
	}

	if edgesPred, err = edgeOf(pred); err != nil {
		return nil, nil, err
	}
	if edgesGt, err = edgeOf(gt); err != nil {
		return nil, nil, err
	}
	return edgesPred, edgesGt, nil
}

// LabelFieldEdges binarizes two labelfields against labelIdx and extracts
// their boundaries with MaskEdges.
func LabelFieldEdges(pred, gt *ndarray.IntField, labelIdx int, crop bool) (edgesPred, edgesGt *ndarray.Mask, err error) {
	if pred.NumElements() == 0 || !pred.Shape().Equal(gt.Shape()) {
		return nil, nil, fmt.Errorf("pred shape %v vs gt shape %v: %w",
			pred.Shape(), gt.Shape(), ErrShapeMismatch)
	}
	return MaskEdges(pred.Equal(labelIdx), gt.Equal(labelIdx), crop)
}

func edgeOf(m *ndarray.Mask) (*ndarray.Mask, error) {
	return ndimage.BinaryErosion(m).Xor(m)
}
