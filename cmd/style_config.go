package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"github.com/simtools/cachereport/render"
)

// StyleConfig is the on-disk YAML shape of a chart style. Every field is
// optional; zero or empty values fall back to the defaults.
type StyleConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	BarWidth   int    `yaml:"bar_width"`
	BarSpacing int    `yaml:"bar_spacing"`
	HitColor   string `yaml:"hit_color"`
	MissColor  string `yaml:"miss_color"`
}

// loadStyleConfig reads a YAML style file with strict field checking
// (typos must cause errors) and merges it over the default style.
func loadStyleConfig(path string) (render.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return render.Style{}, fmt.Errorf("read style file: %w", err)
	}

	var cfg StyleConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return render.Style{}, fmt.Errorf("parse style YAML: %w", err)
	}

	style := render.DefaultStyle()
	if cfg.Width > 0 {
		style.Width = cfg.Width
	}
	if cfg.Height > 0 {
		style.Height = cfg.Height
	}
	if cfg.BarWidth > 0 {
		style.BarWidth = cfg.BarWidth
	}
	if cfg.BarSpacing > 0 {
		style.BarSpacing = cfg.BarSpacing
	}
	if cfg.HitColor != "" {
		style.HitColor = drawing.ColorFromHex(strings.TrimPrefix(cfg.HitColor, "#"))
	}
	if cfg.MissColor != "" {
		style.MissColor = drawing.ColorFromHex(strings.TrimPrefix(cfg.MissColor, "#"))
	}
	return style, nil
}
