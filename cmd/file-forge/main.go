// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the file-forge CLI, a local file
// conversion tool. Subcommand groups cover image, document, and video
// pipelines plus file inspection, batch runs, and the operation history.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the file-forge CLI.
var rootCmd = &cobra.Command{
	Use:   "file-forge",
	Short: "Local file format conversion and compression",
	Long: `file-forge converts, compresses, resizes, and rotates files locally.
It wraps proven codec libraries behind one consistent command surface:
images (jpg, png, webp, gif, and friends), documents (PDF, DOCX, TXT),
and videos (any container ffmpeg understands).

Each domain is a subcommand group: image, doc, and video. The info command
inspects files, batch runs a YAML job list, and history shows past runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./file-forge.yaml or ~/.config/file-forge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("file-forge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "file-forge"))
		}
	}

	viper.SetEnvPrefix("FILE_FORGE")
	viper.AutomaticEnv()

	viper.SetDefault("ffmpeg.binary", "ffmpeg")
	viper.SetDefault("video.preset", "veryslow")
	viper.SetDefault("video.audio_bitrate", "192k")
	viper.SetDefault("video.video_bitrate", "")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", defaultHistoryPath())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "file-forge-history.db"
	}
	return filepath.Join(home, ".local", "share", "file-forge", "history.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
