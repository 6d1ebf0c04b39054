package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/internal/imagex"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show detailed information about a file",
	Long: `Info prints the file's size and type. For recognized image extensions
it also decodes the header and reports dimensions and encoded format.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]
	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	size := fileutil.FileSize(input)
	ext := filepath.Ext(input)

	fmt.Printf("File: %s\n", filepath.Base(input))
	fmt.Printf("Path: %s\n", abs)
	fmt.Printf("Size: %d bytes (%s)\n", size, fileutil.HumanSize(size))
	fmt.Printf("Type: %s\n", ext)

	if imagex.IsImageExt(ext) {
		info, err := imagex.ReadInfo(input)
		if err != nil {
			return err
		}
		fmt.Printf("Dimensions: %d x %d pixels\n", info.Width, info.Height)
		fmt.Printf("Format: %s\n", info.Format)
		fmt.Printf("MIME: %s\n", info.MIME)
	}
	return nil
}
