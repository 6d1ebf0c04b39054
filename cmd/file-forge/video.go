package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/internal/video"
	"github.com/pdiddy/file-forge/pkg/types"
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Video processing and conversion commands",
}

var videoConvertCmd = &cobra.Command{
	Use:   "convert <input> <output-format>",
	Short: "Convert a video to a different container format",
	Long: `Convert transcodes a video into the target container (mp4, mkv, mov,
and anything else ffmpeg understands). Quality (1-100) maps to the x264
CRF scale; set video.video_bitrate in the config to pin a fixed bitrate
instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runVideoConvert,
}

func init() {
	videoConvertCmd.Flags().StringP("output", "o", "", "output file path")
	videoConvertCmd.Flags().IntP("quality", "q", defaultConvertQuality, "video quality (1-100)")

	videoCmd.AddCommand(videoConvertCmd)
	rootCmd.AddCommand(videoCmd)
}

func runVideoConvert(cmd *cobra.Command, args []string) error {
	input, format := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")
	quality, _ := cmd.Flags().GetInt("quality")

	if err := validateQuality(quality); err != nil {
		return err
	}
	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	runner := video.NewRunner(viper.GetString("ffmpeg.binary"))
	if !runner.Available() {
		return fmt.Errorf("%s not found: install ffmpeg or set ffmpeg.binary in the config", runner.Name())
	}

	cfg := types.VideoConfig{
		Binary:       viper.GetString("ffmpeg.binary"),
		VideoBitrate: viper.GetString("video.video_bitrate"),
		AudioBitrate: viper.GetString("video.audio_bitrate"),
		Preset:       viper.GetString("video.preset"),
	}

	result, err := video.Convert(runner, input, output, format, quality, cfg)
	if err != nil {
		return err
	}

	recordOp(types.OpVideoConvert, input, result)
	fmt.Printf("Video converted successfully: %s\n", result)
	return nil
}
