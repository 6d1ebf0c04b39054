// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// docxToText writes every non-empty (post-trim) paragraph of the DOCX, one
// per block, joined by blank lines. Whitespace-only paragraphs are dropped.
func docxToText(input, output string) (string, error) {
	f, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("opening DOCX %s: %w", input, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", input, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parsing DOCX %s: %w", input, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := strings.TrimSpace(p.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	if err := os.WriteFile(output, []byte(strings.Join(paragraphs, "\n\n")), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}
	return output, nil
}

// textToDocx splits the input on blank-line boundaries into paragraph
// candidates; each is trimmed, empties are dropped, and the rest become one
// DOCX paragraph each, in original order.
func textToDocx(input, output string) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", input, err)
	}

	doc := docx.New().WithDefaultTheme()
	for _, candidate := range strings.Split(string(data), "\n\n") {
		if text := strings.TrimSpace(candidate); text != "" {
			doc.AddParagraph().AddText(text)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", output, err)
	}

	_, err = doc.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(output)
		return "", fmt.Errorf("writing DOCX %s: %w", output, err)
	}
	return output, nil
}
