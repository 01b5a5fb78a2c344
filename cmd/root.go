package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachereport",
	Short: "Aggregate and chart cache hit/miss CSVs from simulator runs",
	Long: "cachereport walks a directory of simulation runs (one folder per run), " +
		"sums the hit/miss counts in every cache-model CSV below each folder, and " +
		"renders per-filename bar charts comparing the runs. It can also flatten " +
		"the CSVs into one directory or delete them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// defaultSamplesDir is the mgpusim samples layout the tool was built around.
func defaultSamplesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "samples"
	}
	return filepath.Join(home, "Desktop", "Project", "mgpusim", "samples")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
