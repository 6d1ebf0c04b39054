// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFile(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "input.txt")
	if err := os.WriteFile(existing, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckFile(existing); err != nil {
		t.Errorf("CheckFile(existing) = %v, want nil", err)
	}

	err := CheckFile(filepath.Join(tmpDir, "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CheckFile(missing) = %v, want ErrNotFound", err)
	}

	err = CheckFile(tmpDir)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CheckFile(directory) = %v, want ErrNotFound", err)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jpg", "jpg"},
		{".JPG", "jpg"},
		{"PNG", "png"},
		{".webp", "webp"},
	}
	for _, tt := range tests {
		if got := NormalizeFormat(tt.in); got != tt.want {
			t.Errorf("NormalizeFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputPathDerivation(t *testing.T) {
	if got := ReplaceExt("/tmp/photo.png", "JPG"); got != "/tmp/photo.jpg" {
		t.Errorf("ReplaceExt = %q", got)
	}
	if got := TaggedPath("/tmp/photo.png", "compressed"); got != "/tmp/photo_compressed.png" {
		t.Errorf("TaggedPath = %q", got)
	}
	if got := TaggedPath("/tmp/photo.png", "rotated_90"); got != "/tmp/photo_rotated_90.png" {
		t.Errorf("TaggedPath rotate = %q", got)
	}
	if got := TaggedPath("/tmp/photo.png", ResizeTag(800, 0)); got != "/tmp/photo_resized_800xauto.png" {
		t.Errorf("resize tag = %q", got)
	}
	if got := ResizeTag(0, 600); got != "resized_autox600" {
		t.Errorf("ResizeTag = %q", got)
	}
	if got := ResizeTag(800, 600); got != "resized_800x600" {
		t.Errorf("ResizeTag both = %q", got)
	}
}
