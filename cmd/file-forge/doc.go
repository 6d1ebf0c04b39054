package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/file-forge/internal/document"
	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/pkg/types"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Document conversion commands",
}

var docConvertCmd = &cobra.Command{
	Use:   "convert <input> <output-format>",
	Short: "Convert a document to a different format",
	Long: `Convert transforms a document between formats. Supported conversions:
PDF to TXT (text-layer extraction), DOCX to TXT (paragraph extraction),
and TXT to DOCX (blank-line separated paragraphs).`,
	Args: cobra.ExactArgs(2),
	RunE: runDocConvert,
}

var docExtractPagesCmd = &cobra.Command{
	Use:   "extract-pages <input>",
	Short: "Extract a page range from a PDF",
	Long: `Extract-pages copies pages --start through --end (1-indexed, inclusive)
into a new PDF. Omitting --end extracts through the last page.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocExtractPages,
}

var docMergeCmd = &cobra.Command{
	Use:   "merge <inputs...>",
	Short: "Merge multiple PDFs into one",
	Long: `Merge concatenates the pages of two or more PDFs, preserving both the
input order and the page order within each document.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDocMerge,
}

var docCompressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Compress a PDF file",
	Long: `Compress rewrites a PDF with optimized, deduplicated resources and
compressed streams.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocCompress,
}

func init() {
	docConvertCmd.Flags().StringP("output", "o", "", "output file path")

	docExtractPagesCmd.Flags().StringP("output", "o", "", "output file path")
	docExtractPagesCmd.Flags().Int("start", 0, "first page to extract (1-indexed)")
	docExtractPagesCmd.Flags().Int("end", 0, "last page to extract (default: last page)")
	docExtractPagesCmd.MarkFlagRequired("start")

	docMergeCmd.Flags().StringP("output", "o", "", "output file path (required)")
	docMergeCmd.MarkFlagRequired("output")

	docCompressCmd.Flags().StringP("output", "o", "", "output file path")

	docCmd.AddCommand(docConvertCmd, docExtractPagesCmd, docMergeCmd, docCompressCmd)
	rootCmd.AddCommand(docCmd)
}

func runDocConvert(cmd *cobra.Command, args []string) error {
	input, format := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")

	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	result, err := document.Convert(input, output, format)
	if err != nil {
		return err
	}

	recordOp(types.OpDocConvert, input, result)
	fmt.Printf("Document converted successfully: %s\n", result)
	return nil
}

func runDocExtractPages(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")

	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	result, err := document.ExtractPages(input, output, start, end)
	if err != nil {
		return err
	}

	recordOp(types.OpDocExtract, input, result)
	fmt.Printf("Pages extracted successfully: %s\n", result)
	return nil
}

func runDocMerge(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	for _, input := range args {
		if err := fileutil.CheckFile(input); err != nil {
			return err
		}
	}

	result, err := document.Merge(args, output)
	if err != nil {
		return err
	}

	recordOp(types.OpDocMerge, args[0], result)
	fmt.Printf("Merged %d documents successfully: %s\n", len(args), result)
	return nil
}

func runDocCompress(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")

	if err := fileutil.CheckFile(input); err != nil {
		return err
	}

	originalSize := fileutil.FileSize(input)
	result, err := document.Compress(input, output)
	if err != nil {
		return err
	}
	compressedSize := fileutil.FileSize(result)

	recordOp(types.OpDocCompress, input, result)
	fmt.Printf("Document compressed successfully: %s\n", result)
	fmt.Printf("Original size: %s\n", fileutil.HumanSize(originalSize))
	fmt.Printf("Compressed size: %s\n", fileutil.HumanSize(compressedSize))
	return nil
}
