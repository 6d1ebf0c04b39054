// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import (
	"fmt"
	"image"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pdiddy/file-forge/internal/fileutil"
)

// Info holds the metadata the info command prints for recognized images.
type Info struct {
	Width  int
	Height int
	Format string
	MIME   string
}

// imageExts are the extensions the info command treats as images.
var imageExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true,
	"gif": true, "webp": true, "bmp": true,
}

// IsImageExt reports whether ext (with or without dot, any case) is a
// recognized image extension.
func IsImageExt(ext string) bool {
	return imageExts[fileutil.NormalizeFormat(ext)]
}

// ReadInfo decodes just the image header at path and sniffs its MIME type.
func ReadInfo(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("reading image header %s: %w", path, err)
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("detecting type of %s: %w", path, err)
	}

	return Info{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		MIME:   mime.String(),
	}, nil
}
