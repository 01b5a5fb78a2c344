package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simtools/cachereport/render"
	"github.com/simtools/cachereport/stats"
)

var (
	chartRoot      string
	chartOut       string
	chartOnError   string
	chartStyleFile string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render hit/miss rate bar charts, one PNG per distinct CSV filename",
	Run: func(cmd *cobra.Command, args []string) {
		policy := stats.FailurePolicy(chartOnError)
		if !stats.IsValidFailurePolicy(policy) {
			logrus.Fatalf("Invalid --on-error policy %q (want %q or %q)", chartOnError, stats.FailAbort, stats.FailSkip)
		}

		style := render.DefaultStyle()
		if chartStyleFile != "" {
			loaded, err := loadStyleConfig(chartStyleFile)
			if err != nil {
				logrus.Fatalf("Failed to load style config: %v", err)
			}
			style = loaded
		}

		table, err := stats.Aggregate(chartRoot, policy)
		if err != nil {
			logrus.Fatalf("Aggregation failed: %v", err)
		}
		if len(table) == 0 {
			logrus.Warnf("No hit/miss data found under %s, nothing to chart", chartRoot)
			return
		}

		if err := os.MkdirAll(chartOut, 0o755); err != nil {
			logrus.Fatalf("Failed to create output directory %s: %v", chartOut, err)
		}

		for _, filename := range table.Filenames() {
			folders := table.Folders(filename)
			hitRates := make([]float64, len(folders))
			missRates := make([]float64, len(folders))
			for i, folder := range folders {
				pair := table[filename][folder]
				hitRates[i] = pair.Hit
				missRates[i] = pair.Miss
			}

			outPath := filepath.Join(chartOut, chartFileName(filename))
			if err := writeChart(filename, folders, hitRates, missRates, style, outPath); err != nil {
				logrus.Fatalf("Failed to chart %s: %v", filename, err)
			}
			logrus.Infof("Wrote %s (%d folders)", outPath, len(folders))
		}

		summaries := stats.Summarize(table)
		for _, filename := range table.Filenames() {
			s := summaries[filename]
			logrus.Infof("%s: %d folders, hit rate mean=%.4f min=%.4f max=%.4f stddev=%.4f",
				filename, s.Folders, s.MeanHitRate, s.MinHitRate, s.MaxHitRate, s.StdDev)
		}
	},
}

// writeChart renders one grouped bar chart into outPath.
func writeChart(filename string, folders []string, hitRates, missRates []float64, style render.Style, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	title := fmt.Sprintf("Hit/Miss Rate per Folder for %q", filename)
	if err := render.HitMissBars(title, folders, hitRates, missRates, style, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// chartFileName maps "l1v_tlb.csv" to "l1v_tlb.png".
func chartFileName(csvName string) string {
	return strings.TrimSuffix(csvName, ".csv") + ".png"
}

func init() {
	chartCmd.Flags().StringVar(&chartRoot, "root", defaultSamplesDir(), "Root directory containing one folder per simulation run")
	chartCmd.Flags().StringVar(&chartOut, "out", "charts", "Directory to write PNG charts into")
	chartCmd.Flags().StringVar(&chartOnError, "on-error", string(stats.FailAbort), "Malformed CSV policy (abort, skip)")
	chartCmd.Flags().StringVar(&chartStyleFile, "style", "", "Optional YAML chart style file")

	rootCmd.AddCommand(chartCmd)
}
