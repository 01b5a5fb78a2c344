package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/simtools/cachereport/render"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyleConfig_OverridesDefaults(t *testing.T) {
	path := writeStyleFile(t, "width: 800\nheight: 400\nhit_color: \"#0000ff\"\n")

	style, err := loadStyleConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, 800, style.Width)
	assert.Equal(t, 400, style.Height)
	assert.Equal(t, drawing.ColorFromHex("0000ff"), style.HitColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, render.DefaultStyle().BarWidth, style.BarWidth)
	assert.Equal(t, render.DefaultStyle().MissColor, style.MissColor)
}

func TestLoadStyleConfig_UnknownKey_Errors(t *testing.T) {
	path := writeStyleFile(t, "width: 800\nbar_widht: 20\n")

	_, err := loadStyleConfig(path)
	assert.Error(t, err)
}

func TestLoadStyleConfig_MissingFile_Errors(t *testing.T) {
	_, err := loadStyleConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestChartFileName(t *testing.T) {
	assert.Equal(t, "l1v_tlb.png", chartFileName("l1v_tlb.csv"))
	assert.Equal(t, "report.png", chartFileName("report"))
}
