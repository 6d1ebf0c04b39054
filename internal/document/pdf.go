// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/file-forge/internal/fileutil"
)

// pdfToText extracts the text layer of every page, in page order, joined by
// blank lines. Scanned (image-only) pages yield empty text; OCR is out of
// scope.
func pdfToText(input, output string) (string, error) {
	f, r, err := pdf.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", input, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, r.NumPage())

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d of %s: %w", i, input, err)
		}
		pages = append(pages, text)
	}

	if err := os.WriteFile(output, []byte(strings.Join(pages, "\n\n")), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}
	return output, nil
}

// ExtractPages copies pages [startPage, endPage] (1-indexed, inclusive)
// into a new PDF. endPage 0 means the last page. An empty output derives a
// "_pages_{start}-{end}" sibling path.
func ExtractPages(input, output string, startPage, endPage int) (string, error) {
	total, err := api.PageCountFile(input)
	if err != nil {
		return "", fmt.Errorf("reading page count of %s: %w", input, err)
	}

	start, end, err := resolvePageRange(startPage, endPage, total)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = fileutil.TaggedPath(input, fmt.Sprintf("pages_%d-%d", start, end))
	}

	selection := []string{fmt.Sprintf("%d-%d", start, end)}
	if err := api.TrimFile(input, output, selection, nil); err != nil {
		return "", fmt.Errorf("extracting pages %d-%d from %s: %w", start, end, input, err)
	}
	return output, nil
}

// resolvePageRange validates 1-indexed page bounds against the document's
// page count and fills in a zero endPage with the last page.
func resolvePageRange(startPage, endPage, total int) (int, int, error) {
	if startPage < 1 || startPage > total {
		return 0, 0, fmt.Errorf("%w: start page %d (valid range 1-%d)", ErrPageOutOfRange, startPage, total)
	}
	if endPage == 0 {
		endPage = total
	}
	if endPage > total {
		return 0, 0, fmt.Errorf("%w: end page %d (valid range 1-%d)", ErrPageOutOfRange, endPage, total)
	}
	if endPage < startPage {
		return 0, 0, fmt.Errorf("%w: end page %d before start page %d", ErrPageOutOfRange, endPage, startPage)
	}
	return startPage, endPage, nil
}

// Merge concatenates the pages of inputs, in list order, into one PDF at
// output.
func Merge(inputs []string, output string) (string, error) {
	if len(inputs) < 2 {
		return "", fmt.Errorf("merge requires at least two input files, got %d", len(inputs))
	}
	if output == "" {
		return "", fmt.Errorf("merge requires an explicit output path")
	}
	if err := api.MergeCreateFile(inputs, output, false, nil); err != nil {
		return "", fmt.Errorf("merging %d PDFs into %s: %w", len(inputs), output, err)
	}
	return output, nil
}

// Compress rewrites a PDF with pdfcpu's optimizer (deduplicated resources,
// compressed streams). An empty output derives a "_compressed" sibling path.
func Compress(input, output string) (string, error) {
	if fileutil.NormalizeFormat(filepath.Ext(input)) != "pdf" {
		return "", fmt.Errorf("%w: compress supports PDF input only, got %s", ErrUnsupportedConversion, input)
	}
	if output == "" {
		output = fileutil.TaggedPath(input, "compressed")
	}
	if err := api.OptimizeFile(input, output, nil); err != nil {
		return "", fmt.Errorf("optimizing %s: %w", input, err)
	}
	return output, nil
}
