// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// writePDF writes a minimal PDF with one empty page per entry in widths,
// page i getting a MediaBox width of widths[i]. Distinct widths make page
// identity and order observable after extract and merge.
func writePDF(t *testing.T, path string, widths []int) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	obj := func(format string, args ...any) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, format, args...)
	}

	kids := make([]string, len(widths))
	for i := range widths {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	obj("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), len(widths))
	for i, w := range widths {
		obj("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d 792] /Resources << >> >>\nendobj\n", i+3, w)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// pageWidths reads back the per-page MediaBox widths, in page order.
func pageWidths(t *testing.T, path string) []int {
	t.Helper()
	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatalf("reading page dims of %s: %v", path, err)
	}
	widths := make([]int, len(dims))
	for i, d := range dims {
		widths[i] = int(d.Width + 0.5)
	}
	return widths
}

func TestExtractPagesFullRange(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "report.pdf")
	writePDF(t, input, []int{101, 102, 103})

	out, err := ExtractPages(input, "", 1, 0)
	if err != nil {
		t.Fatalf("ExtractPages: %v", err)
	}
	if want := filepath.Join(tmpDir, "report_pages_1-3.pdf"); out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	count, err := api.PageCountFile(out)
	if err != nil {
		t.Fatalf("reading page count: %v", err)
	}
	if count != 3 {
		t.Errorf("page count = %d, want 3", count)
	}
	if got := pageWidths(t, out); !reflect.DeepEqual(got, []int{101, 102, 103}) {
		t.Errorf("page order = %v, want [101 102 103]", got)
	}
}

func TestExtractPagesSubrange(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "report.pdf")
	writePDF(t, input, []int{101, 102, 103, 104, 105})

	out, err := ExtractPages(input, filepath.Join(tmpDir, "middle.pdf"), 2, 4)
	if err != nil {
		t.Fatalf("ExtractPages: %v", err)
	}
	if got := pageWidths(t, out); !reflect.DeepEqual(got, []int{102, 103, 104}) {
		t.Errorf("extracted pages = %v, want [102 103 104]", got)
	}
}

func TestExtractPagesStartBeyondLast(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "short.pdf")
	writePDF(t, input, []int{101, 102, 103})

	_, err := ExtractPages(input, "", 7, 0)
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("err = %v, want ErrPageOutOfRange", err)
	}
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "first.pdf")
	second := filepath.Join(tmpDir, "second.pdf")
	writePDF(t, first, []int{101, 102})
	writePDF(t, second, []int{201, 202, 203})

	out, err := Merge([]string{first, second}, filepath.Join(tmpDir, "merged.pdf"))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	count, err := api.PageCountFile(out)
	if err != nil {
		t.Fatalf("reading page count: %v", err)
	}
	if count != 5 {
		t.Errorf("page count = %d, want 5", count)
	}
	if got := pageWidths(t, out); !reflect.DeepEqual(got, []int{101, 102, 201, 202, 203}) {
		t.Errorf("merged page order = %v, want first's pages then second's", got)
	}
}
