package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-forge/internal/fileutil"
	"github.com/pdiddy/file-forge/internal/history"
	"github.com/pdiddy/file-forge/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion operations",
	Long: `History lists the most recent conversions recorded in the local
operation log, newest first. Disable recording with history.enabled: false
in the config.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(viper.GetString("history.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No operations recorded yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %-18s %s -> %s (%s -> %s)\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.Op, rec.Input, rec.Output,
			fileutil.HumanSize(rec.InputSize), fileutil.HumanSize(rec.OutputSize))
	}
	return nil
}

// recordOp appends a completed operation to the history log. Failures are
// warnings only; a broken log must not fail a finished conversion.
func recordOp(op types.Operation, input, output string) {
	if !viper.GetBool("history.enabled") {
		return
	}

	store, err := history.Open(viper.GetString("history.path"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	rec := types.Record{
		Op:         op,
		Input:      input,
		Output:     output,
		InputSize:  fileutil.FileSize(input),
		OutputSize: fileutil.FileSize(output),
	}
	if err := store.Record(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}
