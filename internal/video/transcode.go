// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package video

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/pkg/types"
)

const (
	defaultPreset       = "veryslow"
	defaultAudioBitrate = "192k"
)

// Convert transcodes the video at input into the target container format.
// Quality (1-100) maps to an x264 CRF unless the configuration pins a fixed
// video bitrate. An empty output derives the path from input with the
// extension replaced.
func Convert(r *Runner, input, output, format string, quality int, cfg types.VideoConfig) (string, error) {
	target := fileutil.NormalizeFormat(format)
	if output == "" {
		output = fileutil.ReplaceExt(input, target)
	}

	args := []string{"-i", input, "-y"}
	if target == "mp4" {
		args = append(args, "-c:v", "libx264")
	}

	if cfg.VideoBitrate != "" {
		args = append(args, "-b:v", cfg.VideoBitrate)
	} else {
		args = append(args, "-crf", strconv.Itoa(crfForQuality(quality)))
	}

	preset := cfg.Preset
	if preset == "" {
		preset = defaultPreset
	}
	audioBitrate := cfg.AudioBitrate
	if audioBitrate == "" {
		audioBitrate = defaultAudioBitrate
	}
	args = append(args, "-preset", preset, "-c:a", "aac", "-b:a", audioBitrate, output)

	if err := r.run(args); err != nil {
		// ffmpeg may leave a partial container behind.
		os.Remove(output)
		return "", fmt.Errorf("transcoding %s: %w", input, err)
	}
	return output, nil
}

// crfForQuality maps a 1-100 quality to the x264 CRF scale (lower is
// better): 95 -> 2, 50 -> 25, 1 -> 49.
func crfForQuality(quality int) int {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return (100 - quality) / 2
}
