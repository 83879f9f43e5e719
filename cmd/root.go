package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/killallgit/videomind-api/pkg/config"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "videomind-api",
	Short: "VideoMind API server",
	Long: `VideoMind API - video analysis backend for YouTube videos

The API takes a YouTube URL and uses a generative model to produce
summaries, navigable timestamps, answers to questions and a searchable
index of the visual scenes of the video.

Features:
  • Transcript-grounded summaries with [MM:SS] tags
  • Timestamp extraction with validation and fallback parsing
  • Chunked question answering over long transcripts
  • Visual scene embeddings and similarity search`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides logging.level")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration and sets up logging before a command runs
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	if level == "" {
		level = config.GetString("logging.level")
	}
	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if !jsonLogs {
		jsonLogs = strings.EqualFold(config.GetString("logging.format"), "json")
	}

	configureLogging(level, jsonLogs)
}

// configureLogging replaces the default logger
func configureLogging(level string, jsonLogs bool) {
	logger := log.Logger{
		Level:      log.ParseLevel(strings.ToLower(level)),
		TimeFormat: "15:04:05",
		Writer:     &log.ConsoleWriter{Writer: os.Stderr, ColorOutput: isTerminal(os.Stderr)},
	}
	if jsonLogs {
		logger.TimeFormat = ""
		logger.Writer = &log.IOWriter{Writer: os.Stderr}
	}
	log.DefaultLogger = logger
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
