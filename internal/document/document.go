// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document implements document conversions and PDF page operations.
// Text extraction reads the PDF text layer through ledongthuc/pdf; DOCX
// paragraphs go through fumiama/go-docx; page-level PDF surgery (extract,
// merge, optimize) delegates to pdfcpu.
//
// Only three conversion pairs are legal: PDF->TXT, DOCX->TXT, and TXT->DOCX.
package document

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pdiddy/file-forge/internal/fileutil"
)

// ErrUnsupportedConversion indicates a (source, target) format pair outside
// the supported set.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

// ErrPageOutOfRange indicates a page bound outside the document.
var ErrPageOutOfRange = errors.New("page out of range")

// Convert converts the document at input to the target format. An empty
// output derives the path from input with the extension replaced.
func Convert(input, output, format string) (string, error) {
	target := fileutil.NormalizeFormat(format)
	source := fileutil.NormalizeFormat(filepath.Ext(input))

	if output == "" {
		output = fileutil.ReplaceExt(input, target)
	}

	switch {
	case source == "pdf" && target == "txt":
		return pdfToText(input, output)
	case source == "docx" && target == "txt":
		return docxToText(input, output)
	case source == "txt" && target == "docx":
		return textToDocx(input, output)
	default:
		return "", fmt.Errorf("%w: %s to %s (supported: PDF->TXT, DOCX->TXT, TXT->DOCX)",
			ErrUnsupportedConversion, source, target)
	}
}
