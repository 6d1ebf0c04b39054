// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagex implements the image pipeline: format conversion,
// compression, resizing, and rotation. Decoding and resampling delegate to
// disintegration/imaging; WebP encoding to chai2010/webp. The computational
// core is the aspect-ratio-preserving dimension resolver and the per-format
// save-policy table.
package imagex

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments indicates an impossible dimension request, such as
// disabling aspect preservation with only one axis given.
var ErrInvalidArguments = errors.New("invalid arguments")

// ResolveDimensions computes target width and height from the original
// dimensions and optional bounds (0 means "not given").
//
// With both bounds and maintainAspect, the smaller of the two scaling
// ratios is applied to both axes so the result fits inside the box. With a
// single bound the other axis scales proportionally. With maintainAspect
// off, both bounds are required and used verbatim. Scaled values truncate
// toward zero.
func ResolveDimensions(origWidth, origHeight, maxWidth, maxHeight int, maintainAspect bool) (int, int, error) {
	if origWidth <= 0 || origHeight <= 0 {
		return 0, 0, fmt.Errorf("%w: original dimensions %dx%d must be positive", ErrInvalidArguments, origWidth, origHeight)
	}
	if maxWidth < 0 || maxHeight < 0 {
		return 0, 0, fmt.Errorf("%w: bounds must not be negative", ErrInvalidArguments)
	}

	if !maintainAspect {
		if maxWidth == 0 || maxHeight == 0 {
			return 0, 0, fmt.Errorf("%w: both width and height must be specified when not maintaining aspect ratio", ErrInvalidArguments)
		}
		return maxWidth, maxHeight, nil
	}

	switch {
	case maxWidth > 0 && maxHeight > 0:
		widthRatio := float64(maxWidth) / float64(origWidth)
		heightRatio := float64(maxHeight) / float64(origHeight)
		ratio := widthRatio
		if heightRatio < ratio {
			ratio = heightRatio
		}
		return int(float64(origWidth) * ratio), int(float64(origHeight) * ratio), nil
	case maxWidth > 0:
		ratio := float64(maxWidth) / float64(origWidth)
		return maxWidth, int(float64(origHeight) * ratio), nil
	case maxHeight > 0:
		ratio := float64(maxHeight) / float64(origHeight)
		return int(float64(origWidth) * ratio), maxHeight, nil
	default:
		return origWidth, origHeight, nil
	}
}
