package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-forge/internal/batch"
	"github.com/pdiddy/file-forge/internal/document"
	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/internal/imagex"
	"github.com/pdiddy/file-forge/internal/video"
	"github.com/pdiddy/file-forge/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Run a list of conversion jobs from a YAML file",
	Long: `Batch executes every job in a YAML job file, in order, printing one
status line per job and a summary. A failed job does not stop the run;
the command exits non-zero if any job failed.

Example job file:

    jobs:
      - op: image-convert
        input: photo.png
        format: jpg
        quality: 90
      - op: doc-merge
        inputs: [a.pdf, b.pdf]
        output: merged.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := fileutil.CheckFile(args[0]); err != nil {
		return err
	}

	jobs, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	result := batch.Run(jobs, dispatchJob, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d job(s) failed", result.Failed)
	}
	return nil
}

// dispatchJob routes one batch job to the matching pipeline operation.
func dispatchJob(job batch.Job) (string, error) {
	inputs := job.Inputs
	if job.Input != "" {
		inputs = append([]string{job.Input}, inputs...)
	}
	if len(inputs) == 0 {
		return "", fmt.Errorf("job has no input")
	}
	for _, input := range inputs {
		if err := fileutil.CheckFile(input); err != nil {
			return "", err
		}
	}

	quality := job.Quality
	maintainAspect := true
	if job.MaintainAspect != nil {
		maintainAspect = *job.MaintainAspect
	}

	var out string
	var err error
	switch job.Op {
	case types.OpImageConvert:
		if quality == 0 {
			quality = defaultConvertQuality
		}
		out, err = imagex.Convert(job.Input, job.Output, job.Format, quality)
	case types.OpImageCompress:
		if quality == 0 {
			quality = defaultCompressQuality
		}
		out, err = imagex.Compress(job.Input, job.Output, quality, job.MaxWidth, job.MaxHeight)
	case types.OpImageResize:
		out, err = imagex.Resize(job.Input, job.Output, job.Width, job.Height, maintainAspect)
	case types.OpImageRotate:
		out, err = imagex.Rotate(job.Input, job.Output, job.Angle)
	case types.OpDocConvert:
		out, err = document.Convert(job.Input, job.Output, job.Format)
	case types.OpDocExtract:
		out, err = document.ExtractPages(job.Input, job.Output, job.StartPage, job.EndPage)
	case types.OpDocMerge:
		out, err = document.Merge(inputs, job.Output)
	case types.OpDocCompress:
		out, err = document.Compress(job.Input, job.Output)
	case types.OpVideoConvert:
		if quality == 0 {
			quality = defaultConvertQuality
		}
		runner := video.NewRunner(viper.GetString("ffmpeg.binary"))
		if !runner.Available() {
			return "", fmt.Errorf("%s not found: install ffmpeg or set ffmpeg.binary in the config", runner.Name())
		}
		cfg := types.VideoConfig{
			VideoBitrate: viper.GetString("video.video_bitrate"),
			AudioBitrate: viper.GetString("video.audio_bitrate"),
			Preset:       viper.GetString("video.preset"),
		}
		out, err = video.Convert(runner, job.Input, job.Output, job.Format, quality, cfg)
	default:
		return "", fmt.Errorf("unknown operation %q", job.Op)
	}

	if err != nil {
		return "", err
	}
	recordOp(job.Op, inputs[0], out)
	return out, nil
}
