// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileutil provides input validation and output-path derivation
// shared by every conversion command. Output paths, when the user gives
// none, are derived deterministically from the input path: extension
// replacement for format conversions, a suffix tag before the extension
// for in-place operations (compress, resize, rotate).
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the input path does not exist or is not a regular file.
var ErrNotFound = errors.New("file not found")

// CheckFile verifies that path exists and is a regular file. Every command
// calls this before handing the path to any decoding library.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return nil
}

// FileSize returns the size of path in bytes, or 0 if it cannot be read.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// HumanSize formats a byte count as a human-readable string.
func HumanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", size)
}

// NormalizeFormat lower-cases a format token and strips a leading dot,
// so ".JPG" and "jpg" are equivalent.
func NormalizeFormat(token string) string {
	return strings.TrimPrefix(strings.ToLower(token), ".")
}

// ReplaceExt returns path with its extension replaced by the given format
// token (normalized).
func ReplaceExt(path, format string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + NormalizeFormat(format)
}

// TaggedPath inserts "_tag" before the extension of path:
// photo.jpg + "compressed" -> photo_compressed.jpg.
func TaggedPath(path, tag string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + tag + ext
}

// ResizeTag builds the suffix tag for resize outputs. A zero dimension
// renders as "auto": resized_800xauto.
func ResizeTag(width, height int) string {
	return fmt.Sprintf("resized_%sx%s", dimToken(width), dimToken(height))
}

func dimToken(n int) string {
	if n <= 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", n)
}
