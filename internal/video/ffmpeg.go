// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package video implements video container conversion by driving an ffmpeg
// binary. The binary is probed at startup; transcoding is synchronous and
// runs to completion or fails.
package video

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const defaultBinary = "ffmpeg"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// Runner invokes a specific ffmpeg binary.
type Runner struct {
	bin  string
	exec executor
}

// NewRunner creates a Runner for the given ffmpeg binary name or path.
// An empty bin falls back to "ffmpeg" on PATH.
func NewRunner(bin string) *Runner {
	return newRunner(bin, &osExecutor{})
}

func newRunner(bin string, ex executor) *Runner {
	if bin == "" {
		bin = defaultBinary
	}
	return &Runner{bin: bin, exec: ex}
}

// Name returns the configured binary name.
func (r *Runner) Name() string { return r.bin }

// Available reports whether the binary exists on PATH and responds to
// a version query.
func (r *Runner) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.Run(r.bin, []string{"-version"}, io.Discard) == nil
}

// run executes the binary with args, returning an error that carries the
// tail of ffmpeg's stderr output.
func (r *Runner) run(args []string) error {
	var stderr bytes.Buffer
	if err := r.exec.Run(r.bin, args, &stderr); err != nil {
		return fmt.Errorf("%s: %w: %s", r.bin, err, stderrTail(stderr.String()))
	}
	return nil
}

// stderrTail keeps the last few lines of ffmpeg output, which is where the
// actual error message lands.
func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, " | ")
}
