// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import "github.com/pdiddy/file-forge/internal/fileutil"

// Format tokens with explicit save policies. Any other token falls through
// to the generic encoder path with the quality passed verbatim.
const (
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatGIF  = "gif"
)

// SavePolicy captures how an image is encoded for one target format.
type SavePolicy struct {
	// Format is the normalized target token.
	Format string

	// Quality is the encode quality (1-100). Meaningful only when
	// QualityApplies is true.
	Quality int

	// QualityApplies reports whether the target encoder is lossy and
	// honors a quality setting. Lossless targets drop a supplied quality
	// silently.
	QualityApplies bool

	// Lossless reports whether the target encoding is lossless.
	Lossless bool

	// RequiresOpaque reports whether the target cannot carry an alpha
	// channel, so transparent input must be flattened before encoding.
	RequiresOpaque bool
}

// SelectPolicy resolves the save policy for a target format token. The
// token is normalized (lower-cased, leading dot stripped) before matching.
func SelectPolicy(token string, quality int) SavePolicy {
	format := fileutil.NormalizeFormat(token)

	switch format {
	case FormatJPG, FormatJPEG:
		return SavePolicy{Format: format, Quality: quality, QualityApplies: true, RequiresOpaque: true}
	case FormatPNG:
		return SavePolicy{Format: format, Lossless: true}
	case FormatWebP:
		return SavePolicy{Format: format, Quality: quality, QualityApplies: true}
	case FormatGIF:
		return SavePolicy{Format: format, Lossless: true}
	default:
		return SavePolicy{Format: format, Quality: quality, QualityApplies: true}
	}
}
