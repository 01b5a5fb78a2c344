// Package render draws grouped hit/miss bar charts as PNG images.
package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style controls chart geometry and bar colors.
type Style struct {
	Width      int
	Height     int
	BarWidth   int
	BarSpacing int
	HitColor   drawing.Color
	MissColor  drawing.Color
}

// DefaultStyle mirrors the 12x6 inch figure the charts are modeled on:
// green hit bars, red miss bars.
func DefaultStyle() Style {
	return Style{
		Width:      1200,
		Height:     600,
		BarWidth:   28,
		BarSpacing: 14,
		HitColor:   chart.ColorGreen,
		MissColor:  chart.ColorRed,
	}
}

// HitMissBars renders one grouped bar chart to w: two bars per folder, hit
// then miss, with the folder name as a rotated x-axis label on the hit bar.
// The y-axis is fixed to [0,1] so charts stay comparable across filenames.
func HitMissBars(title string, folders []string, hitRates, missRates []float64, style Style, w io.Writer) error {
	if len(folders) == 0 {
		return fmt.Errorf("no folders to chart")
	}
	if len(hitRates) != len(folders) || len(missRates) != len(folders) {
		return fmt.Errorf("series length mismatch: %d folders, %d hit rates, %d miss rates",
			len(folders), len(hitRates), len(missRates))
	}

	bars := make([]chart.Value, 0, 2*len(folders))
	for i, folder := range folders {
		bars = append(bars,
			chart.Value{
				Label: folder,
				Value: hitRates[i],
				Style: chart.Style{FillColor: style.HitColor, StrokeColor: style.HitColor},
			},
			chart.Value{
				Value: missRates[i],
				Style: chart.Style{FillColor: style.MissColor, StrokeColor: style.MissColor},
			},
		)
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      style.Width,
		Height:     style.Height,
		BarWidth:   style.BarWidth,
		BarSpacing: style.BarSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 60},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  "Rate",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}
