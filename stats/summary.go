package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FilenameSummary aggregates hit-rate statistics for one CSV filename
// across all folders that produced it.
type FilenameSummary struct {
	Folders     int
	MeanHitRate float64
	MinHitRate  float64
	MaxHitRate  float64
	StdDev      float64
}

// Summarize computes per-filename statistics from a rate table.
// Safe for nil or empty tables (returns an empty map).
func Summarize(table RateTable) map[string]FilenameSummary {
	summaries := make(map[string]FilenameSummary, len(table))

	for name, byFolder := range table {
		rates := make([]float64, 0, len(byFolder))
		for _, pair := range byFolder {
			rates = append(rates, pair.Hit)
		}
		if len(rates) == 0 {
			continue
		}
		sort.Float64s(rates)

		mean, std := stat.MeanStdDev(rates, nil)
		if len(rates) == 1 {
			std = 0 // sample stddev is undefined for a single folder
		}

		summaries[name] = FilenameSummary{
			Folders:     len(rates),
			MeanHitRate: mean,
			MinHitRate:  rates[0],
			MaxHitRate:  rates[len(rates)-1],
			StdDev:      std,
		}
	}

	return summaries
}
