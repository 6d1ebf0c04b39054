package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/internal/imagex"
	"github.com/pdiddy/file-forge/pkg/types"
)

const (
	defaultConvertQuality  = 95
	defaultCompressQuality = 85
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Image processing and conversion commands",
}

var imageConvertCmd = &cobra.Command{
	Use:   "convert <input> <output-format>",
	Short: "Convert an image to a different format",
	Long: `Convert re-encodes an image into the target format (jpg, png, webp,
gif, tiff, bmp). Transparent input is flattened onto a white background
when the target cannot carry an alpha channel.`,
	Args: cobra.ExactArgs(2),
	RunE: runImageConvert,
}

var imageCompressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Compress an image file",
	Long: `Compress re-encodes an image at a reduced quality in its own format,
optionally scaling it down to fit within --max-width/--max-height.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageCompress,
}

var imageResizeCmd = &cobra.Command{
	Use:   "resize <input>",
	Short: "Resize an image to specified dimensions",
	Long: `Resize scales an image to the requested width and/or height. With
aspect preservation (default) a single dimension infers the other; with
--maintain-aspect=false both dimensions are required and used verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageResize,
}

var imageRotateCmd = &cobra.Command{
	Use:   "rotate <input>",
	Short: "Rotate an image by a given angle",
	Long: `Rotate turns an image counter-clockwise by --angle degrees, expanding
the canvas to fit and filling exposed corners with white.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageRotate,
}

func init() {
	imageConvertCmd.Flags().StringP("output", "o", "", "output file path")
	imageConvertCmd.Flags().IntP("quality", "q", defaultConvertQuality, "image quality (1-100)")

	imageCompressCmd.Flags().StringP("output", "o", "", "output file path")
	imageCompressCmd.Flags().IntP("quality", "q", defaultCompressQuality, "compression quality (1-100)")
	imageCompressCmd.Flags().Int("max-width", 0, "maximum width in pixels")
	imageCompressCmd.Flags().Int("max-height", 0, "maximum height in pixels")

	imageResizeCmd.Flags().StringP("output", "o", "", "output file path")
	imageResizeCmd.Flags().IntP("width", "w", 0, "target width in pixels")
	imageResizeCmd.Flags().Int("height", 0, "target height in pixels")
	imageResizeCmd.Flags().Bool("maintain-aspect", true, "maintain aspect ratio")

	imageRotateCmd.Flags().StringP("output", "o", "", "output file path")
	imageRotateCmd.Flags().Int("angle", 0, "rotation angle in degrees (positive = counter-clockwise)")
	imageRotateCmd.MarkFlagRequired("angle")

	imageCmd.AddCommand(imageConvertCmd, imageCompressCmd, imageResizeCmd, imageRotateCmd)
	rootCmd.AddCommand(imageCmd)
}

func validateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}
	return nil
}

func runImageConvert(cmd *cobra.Command, args []string) error {
	input, format := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")
	quality, _ := cmd.Flags().GetInt("quality")

	if err := validateQuality(quality); err != nil {
		return err
	}
	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	result, err := imagex.Convert(input, output, format, quality)
	if err != nil {
		return err
	}

	recordOp(types.OpImageConvert, input, result)
	fmt.Printf("Image converted successfully: %s\n", result)
	return nil
}

func runImageCompress(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	quality, _ := cmd.Flags().GetInt("quality")
	maxWidth, _ := cmd.Flags().GetInt("max-width")
	maxHeight, _ := cmd.Flags().GetInt("max-height")

	if err := validateQuality(quality); err != nil {
		return err
	}
	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	originalSize := fileutil.FileSize(input)
	result, err := imagex.Compress(input, output, quality, maxWidth, maxHeight)
	if err != nil {
		return err
	}
	compressedSize := fileutil.FileSize(result)

	recordOp(types.OpImageCompress, input, result)
	fmt.Printf("Image compressed successfully: %s\n", result)
	fmt.Printf("Original size: %s\n", fileutil.HumanSize(originalSize))
	fmt.Printf("Compressed size: %s\n", fileutil.HumanSize(compressedSize))
	if originalSize > 0 {
		reduction := float64(originalSize-compressedSize) / float64(originalSize) * 100
		fmt.Printf("Size reduction: %.2f%%\n", reduction)
	}
	return nil
}

func runImageResize(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	maintainAspect, _ := cmd.Flags().GetBool("maintain-aspect")

	if width == 0 && height == 0 {
		return fmt.Errorf("at least one of --width or --height must be specified")
	}
	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	result, err := imagex.Resize(input, output, width, height, maintainAspect)
	if err != nil {
		return err
	}

	recordOp(types.OpImageResize, input, result)
	fmt.Printf("Image resized successfully: %s\n", result)
	return nil
}

func runImageRotate(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	angle, _ := cmd.Flags().GetInt("angle")

	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	result, err := imagex.Rotate(input, output, angle)
	if err != nil {
		return err
	}

	recordOp(types.OpImageRotate, input, result)
	fmt.Printf("Image rotated successfully: %s\n", result)
	return nil
}
