package ui

import (
	"strings"
	"testing"

	"biodesign/internal/profile"
)

func testSeries(t *testing.T) []Series {
	t.Helper()
	curves, err := profile.Compute(168, 100)
	if err != nil {
		t.Fatal(err)
	}
	styles := NewStyles(LightTheme())
	return []Series{
		{Name: "Biomass", Unit: "g/L", Data: curves.Biomass, Style: styles.Biomass},
		{Name: "Substrate", Unit: "g/L", Data: curves.Substrate, Style: styles.Substrate},
		{Name: "Product", Unit: "g/L", Data: curves.Product, Style: styles.Product},
	}
}

func TestRenderChart_Dimensions(t *testing.T) {
	out := RenderChart(60, 15, 168, testSeries(t)...)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 15 plot rows, one axis row, one label row.
	if len(lines) != 17 {
		t.Errorf("expected 17 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "•") {
		t.Error("chart contains no plotted points")
	}
	if !strings.Contains(lines[16], "168 h") {
		t.Errorf("time axis label missing from %q", lines[16])
	}
}

func TestRenderChart_AxisLabels(t *testing.T) {
	out := RenderChart(60, 15, 168, testSeries(t)...)
	// Biomass/substrate both top out at 10, so the value axis runs 0-10.
	if !strings.Contains(out, "10.0") {
		t.Error("max value label missing")
	}
	if !strings.Contains(out, "5.0") {
		t.Error("mid value label missing")
	}
	if !strings.Contains(out, "0.0") {
		t.Error("zero label missing")
	}
}

func TestRenderChart_DegenerateInputs(t *testing.T) {
	if out := RenderChart(5, 15, 168, testSeries(t)...); out != "" {
		t.Error("too-narrow chart should render empty")
	}
	if out := RenderChart(60, 2, 168, testSeries(t)...); out != "" {
		t.Error("too-short chart should render empty")
	}
	if out := RenderChart(60, 15, 168); out != "" {
		t.Error("chart with no series should render empty")
	}
}

func TestRenderLegend(t *testing.T) {
	legend := RenderLegend(testSeries(t)...)
	for _, want := range []string{"Biomass (g/L)", "Substrate (g/L)", "Product (g/L)"} {
		if !strings.Contains(legend, want) {
			t.Errorf("legend missing %q", want)
		}
	}
}
