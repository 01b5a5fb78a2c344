package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simtools/cachereport/collectcsv"
)

var (
	collectRoot string
	collectOut  string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Copy every CSV under the root into one flat directory",
	Long: "Copy every .csv file below each run folder into a single output " +
		"directory, renaming each file to <folder>_<file> so runs stay distinguishable.",
	Run: func(cmd *cobra.Command, args []string) {
		copied, err := collectcsv.Collect(collectRoot, collectOut)
		if err != nil {
			logrus.Fatalf("CSV collection failed: %v", err)
		}
		logrus.Infof("CSV collection complete: %d files copied to %s", copied, collectOut)
	},
}

func init() {
	collectCmd.Flags().StringVar(&collectRoot, "root", defaultSamplesDir(), "Root directory containing one folder per simulation run")
	collectCmd.Flags().StringVar(&collectOut, "out", "CollectedCSVs", "Directory to copy CSV files into")

	rootCmd.AddCommand(collectCmd)
}
