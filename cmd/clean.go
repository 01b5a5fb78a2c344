package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simtools/cachereport/collectcsv"
)

var (
	cleanRoot   string
	cleanDryRun bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete every CSV under the root",
	Run: func(cmd *cobra.Command, args []string) {
		deleted, err := collectcsv.Clean(cleanRoot, cleanDryRun)
		if err != nil {
			logrus.Fatalf("CSV deletion failed: %v", err)
		}
		if cleanDryRun {
			logrus.Infof("Dry run complete: %d files would be deleted", deleted)
			return
		}
		logrus.Infof("CSV deletion complete: %d files deleted", deleted)
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanRoot, "root", defaultSamplesDir(), "Root directory containing one folder per simulation run")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "List the files that would be deleted without removing them")

	rootCmd.AddCommand(cleanCmd)
}
