// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VideoConfig holds the transcoder settings resolved from configuration.
type VideoConfig struct {
	// Binary is the ffmpeg executable name or path.
	Binary string `yaml:"binary"`

	// VideoBitrate, when non-empty, overrides CRF-based rate control with a
	// fixed target bitrate (e.g. "5000k").
	VideoBitrate string `yaml:"video_bitrate"`

	// AudioBitrate is the AAC audio bitrate (e.g. "192k").
	AudioBitrate string `yaml:"audio_bitrate"`

	// Preset is the x264 encoder preset.
	Preset string `yaml:"preset"`
}

// HistoryConfig controls the local operation log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
