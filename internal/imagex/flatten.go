// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import (
	"image"
	"image/draw"
)

// NeedsFlatten reports whether img must be composited onto an opaque
// background before being handed to the encoder described by policy.
func NeedsFlatten(img image.Image, policy SavePolicy) bool {
	if !policy.RequiresOpaque {
		return false
	}
	return !isOpaque(img)
}

// FlattenOnWhite composites img over a white background. Fully opaque
// pixels keep their RGB values; translucent pixels blend toward white.
// Palette-indexed sources go through the same path: draw.Over reads them
// through their color model, which promotes to full color+alpha first.
func FlattenOnWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	flat := image.NewNRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
