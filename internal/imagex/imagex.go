// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Register WebP decoding; imaging decodes through image.Decode.
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/file-forge/internal/fileutil"
)

// saveQuality is the JPEG quality used when an operation re-saves in the
// input's own format (resize, rotate).
const saveQuality = 95

// Convert re-encodes the image at input into the target format. An empty
// output derives the path from input with the extension replaced.
func Convert(input, output, format string, quality int) (string, error) {
	policy := SelectPolicy(format, quality)
	if output == "" {
		output = fileutil.ReplaceExt(input, format)
	}

	img, err := imaging.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", input, err)
	}
	if err := encode(img, output, policy); err != nil {
		return "", err
	}
	return output, nil
}

// Compress re-encodes the image at the given quality, optionally scaling it
// down to fit within maxWidth x maxHeight (aspect ratio preserved). The
// output format is the input's own format.
func Compress(input, output string, quality, maxWidth, maxHeight int) (string, error) {
	if output == "" {
		output = fileutil.TaggedPath(input, "compressed")
	}

	img, err := imaging.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", input, err)
	}

	if maxWidth > 0 || maxHeight > 0 {
		bounds := img.Bounds()
		w, h, err := ResolveDimensions(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight, true)
		if err != nil {
			return "", err
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	policy := SelectPolicy(filepath.Ext(input), quality)
	if err := encode(img, output, policy); err != nil {
		return "", err
	}
	return output, nil
}

// Resize scales the image to the requested dimensions. A zero width or
// height means "infer from aspect ratio"; with maintainAspect off both must
// be given. At least one dimension is required.
func Resize(input, output string, width, height int, maintainAspect bool) (string, error) {
	if width == 0 && height == 0 {
		return "", fmt.Errorf("%w: at least one of width or height must be specified", ErrInvalidArguments)
	}
	if output == "" {
		output = fileutil.TaggedPath(input, fileutil.ResizeTag(width, height))
	}

	img, err := imaging.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", input, err)
	}

	bounds := img.Bounds()
	w, h, err := ResolveDimensions(bounds.Dx(), bounds.Dy(), width, height, maintainAspect)
	if err != nil {
		return "", err
	}
	img = imaging.Resize(img, w, h, imaging.Lanczos)

	policy := SelectPolicy(filepath.Ext(input), saveQuality)
	if err := encode(img, output, policy); err != nil {
		return "", err
	}
	return output, nil
}

// Rotate rotates the image counter-clockwise by angle degrees, expanding
// the canvas to fit and filling exposed corners with white.
func Rotate(input, output string, angle int) (string, error) {
	if output == "" {
		output = fileutil.TaggedPath(input, fmt.Sprintf("rotated_%d", angle))
	}

	img, err := imaging.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", input, err)
	}
	rotated := imaging.Rotate(img, float64(angle), color.White)

	policy := SelectPolicy(filepath.Ext(input), saveQuality)
	if err := encode(rotated, output, policy); err != nil {
		return "", err
	}
	return output, nil
}

// encode writes img to outPath according to policy, flattening transparency
// first when the target cannot carry it. A failed encode removes the
// partially-written output.
func encode(img image.Image, outPath string, policy SavePolicy) error {
	if NeedsFlatten(img, policy) {
		img = FlattenOnWhite(img)
	}

	write, err := encoderFor(img, policy)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	return nil
}

// encoderFor resolves the write function for a policy before any output
// file is created, so unsupported targets never leave an empty file behind.
func encoderFor(img image.Image, policy SavePolicy) (func(io.Writer) error, error) {
	switch policy.Format {
	case FormatWebP:
		opts := &webp.Options{Quality: float32(policy.Quality)}
		return func(w io.Writer) error { return webp.Encode(w, img, opts) }, nil
	case FormatJPG, FormatJPEG:
		return func(w io.Writer) error {
			return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(policy.Quality))
		}, nil
	case FormatPNG:
		return func(w io.Writer) error {
			return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
		}, nil
	case FormatGIF:
		return func(w io.Writer) error { return imaging.Encode(w, img, imaging.GIF) }, nil
	default:
		format, err := imaging.FormatFromExtension(policy.Format)
		if err != nil {
			return nil, fmt.Errorf("unsupported image format %q: %w", policy.Format, err)
		}
		return func(w io.Writer) error {
			return imaging.Encode(w, img, format, imaging.JPEGQuality(policy.Quality))
		}, nil
	}
}
