// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds records shared between the conversion dispatchers,
// the batch runner, and the operation history store.
package types

import "time"

// Operation identifies one kind of conversion the CLI can perform.
type Operation string

const (
	OpImageConvert  Operation = "image-convert"
	OpImageCompress Operation = "image-compress"
	OpImageResize   Operation = "image-resize"
	OpImageRotate   Operation = "image-rotate"
	OpDocConvert    Operation = "doc-convert"
	OpDocExtract    Operation = "doc-extract-pages"
	OpDocMerge      Operation = "doc-merge"
	OpDocCompress   Operation = "doc-compress"
	OpVideoConvert  Operation = "video-convert"
)

// Record is one completed operation as stored in the history database.
type Record struct {
	ID         int64     `json:"id" yaml:"id"`
	Op         Operation `json:"op" yaml:"op"`
	Input      string    `json:"input" yaml:"input"`
	Output     string    `json:"output" yaml:"output"`
	InputSize  int64     `json:"input_size" yaml:"input_size"`
	OutputSize int64     `json:"output_size" yaml:"output_size"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
