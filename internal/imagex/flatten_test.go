// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import (
	"image"
	"image/color"
	"image/color/palette"
	"testing"
)

func TestNeedsFlatten(t *testing.T) {
	jpeg := SelectPolicy("jpg", 90)
	webp := SelectPolicy("webp", 90)

	transparent := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	if !NeedsFlatten(transparent, jpeg) {
		t.Error("transparent image under jpeg policy should need flattening")
	}
	if NeedsFlatten(opaque, jpeg) {
		t.Error("opaque image should not need flattening")
	}
	if NeedsFlatten(transparent, webp) {
		t.Error("webp supports alpha; no flattening expected")
	}
}

func TestFlattenOnWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 0})                 // fully transparent
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 10, B: 30, A: 255}) // fully opaque
	img.SetNRGBA(2, 0, color.NRGBA{A: 128})                       // half-transparent black

	flat := FlattenOnWhite(img)

	if got := flat.NRGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("transparent pixel = %+v, want pure white", got)
	}
	if got := flat.NRGBAAt(1, 0); got.R != 200 || got.G != 10 || got.B != 30 {
		t.Errorf("opaque pixel = %+v, want original color", got)
	}
	got := flat.NRGBAAt(2, 0)
	if got.R < 120 || got.R > 135 {
		t.Errorf("half-transparent black = %+v, want mid-gray blend toward white", got)
	}
	if !flat.Opaque() {
		t.Error("flattened image should be fully opaque")
	}
}

func TestFlattenPalettedInput(t *testing.T) {
	// Paletted images promote through their color model before compositing.
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette.Plan9)
	idx := uint8(img.Palette.Index(color.RGBA{R: 255, A: 255}))
	for i := range img.Pix {
		img.Pix[i] = idx
	}

	flat := FlattenOnWhite(img)
	got := flat.NRGBAAt(0, 0)
	if got.A != 255 {
		t.Errorf("flattened paletted pixel alpha = %d, want 255", got.A)
	}
	if got.R < 200 {
		t.Errorf("flattened paletted pixel = %+v, want red preserved", got)
	}
}
