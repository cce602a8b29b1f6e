package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biodesign/internal/design"
	"biodesign/internal/process"
)

func TestWriteCurvesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCurvesCSV(&buf, design.Default()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "time_h,biomass_g_l,substrate_g_l,product_g_l" {
		t.Errorf("unexpected header %q", lines[0])
	}
	// Header plus the dashboard's default sample count.
	if len(lines) != 101 {
		t.Fatalf("expected 101 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0.000,0.1000,10.0000,0.0000") {
		t.Errorf("unexpected first sample %q", lines[1])
	}
	if !strings.HasPrefix(lines[100], "168.000,") {
		t.Errorf("last sample should be at t=168, got %q", lines[100])
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := WriteAll(context.Background(), dir, design.Default()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{SummaryFileName, CurvesFileName, DesignFileName, ReportFileName} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}

	// The exported design must load back.
	if _, err := design.Load(filepath.Join(dir, DesignFileName)); err != nil {
		t.Errorf("exported design does not round trip: %v", err)
	}
}

func TestWriteAll_RejectsInvalidDesign(t *testing.T) {
	d := design.Default()
	d.Parameters.Agitation = 0

	err := WriteAll(context.Background(), t.TempDir(), d)
	if !errors.Is(err, process.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReport_Sections(t *testing.T) {
	md := Report(design.Default())

	for _, want := range []string{
		"# Bioprocess Design Report",
		"## Process Parameters",
		"## Media Design",
		"## Process Controls",
		"## PAT Strategy",
		"## Safety Alarms",
		"| Online Monitors | Biomass Probe, Offgas Analysis, Glucose Analyzer |",
		"| Temperature Range | 30.0-37.0°C |",
		"| Duration | 168 hours |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
