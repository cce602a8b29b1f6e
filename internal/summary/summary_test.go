package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"biodesign/internal/process"
)

func referenceInputs() (process.Config, process.Parameters) {
	cfg := process.Config{
		ProcessType: process.Batch,
		Organism:    "CHO Cells",
		Scale:       process.Laboratory,
	}
	return cfg, process.DefaultParameters()
}

func TestFormat_RowOrderAndValues(t *testing.T) {
	cfg, p := referenceInputs()
	rows := Format(cfg, p)

	want := []Row{
		{"Process Type", "Batch Culture"},
		{"Organism", "CHO Cells"},
		{"Scale", "Laboratory (1-10L)"},
		{"Temperature Range", "30.0-37.0°C"},
		{"pH Range", "6.8-7.2"},
		{"DO Setpoint", "40%"},
		{"Agitation Speed", "200 RPM"},
		{"Aeration Rate", "0.5 vvm"},
		{"Duration", "168 hours"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("summary rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_ExactReferenceStrings(t *testing.T) {
	cfg, p := referenceInputs()
	rows := Format(cfg, p)

	if got := rows[3].Value; got != "30.0-37.0°C" {
		t.Errorf("row 4 value: expected %q, got %q", "30.0-37.0°C", got)
	}
	if got := rows[8].Value; got != "168 hours" {
		t.Errorf("row 9 value: expected %q, got %q", "168 hours", got)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	cfg, p := referenceInputs()
	a := Format(cfg, p)
	b := Format(cfg, p)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	cfg, p := referenceInputs()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Format(cfg, p)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Parameter,Value" {
		t.Errorf("header: expected %q, got %q", "Parameter,Value", lines[0])
	}
	if len(lines) != 10 {
		t.Fatalf("expected header + 9 rows, got %d lines", len(lines))
	}
	if lines[4] != "Temperature Range,30.0-37.0°C" {
		t.Errorf("unexpected temperature line %q", lines[4])
	}
}

func TestWriteCSV_QuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{"Supplements", "Yeast Extract, Peptone"}}
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != `Supplements,"Yeast Extract, Peptone"` {
		t.Errorf("comma value should be quoted, got %q", lines[1])
	}
}

func TestFormatMedia(t *testing.T) {
	rows := FormatMedia(process.DefaultMedia())
	if rows[0].Value != "DMEM" {
		t.Errorf("base media row: got %q", rows[0].Value)
	}
	if rows[3].Value != "Yeast Extract, Peptone, Trace Elements, Vitamins, Antifoam" {
		t.Errorf("supplements row: got %q", rows[3].Value)
	}

	m := process.DefaultMedia()
	m.YeastExtract = false
	m.Peptone = false
	m.TraceElements = false
	m.Vitamins = false
	m.Antifoam = false
	rows = FormatMedia(m)
	if rows[3].Value != "None" {
		t.Errorf("empty supplements should read None, got %q", rows[3].Value)
	}
}

func TestFormatControls(t *testing.T) {
	rows := FormatControls(process.DefaultControls())
	if len(rows) != 3 {
		t.Fatalf("expected 3 control rows, got %d", len(rows))
	}
	if rows[0].Value != "Kp=2 Ki=0.5 Kd=0.1" {
		t.Errorf("temperature PID row: got %q", rows[0].Value)
	}
}

func TestFormatPAT(t *testing.T) {
	rows := FormatPAT(process.DefaultPAT())
	want := []Row{
		{"Online Monitors", "Biomass Probe, Offgas Analysis, Glucose Analyzer"},
		{"Sampling Interval", "12 hours"},
		{"Sample Volume", "5 mL"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("PAT rows mismatch (-want +got):\n%s", diff)
	}

	p := process.DefaultPAT()
	p.BiomassProbe = false
	p.OffgasAnalysis = false
	p.GlucoseAnalyzer = false
	rows = FormatPAT(p)
	if rows[0].Value != "None" {
		t.Errorf("no monitors should read None, got %q", rows[0].Value)
	}
}

func TestFormatSafety(t *testing.T) {
	rows := FormatSafety(process.DefaultSafety())
	if len(rows) != 4 {
		t.Fatalf("expected 4 safety rows, got %d", len(rows))
	}
	if rows[0].Value != "25.0-42.0°C" {
		t.Errorf("temperature alarms row: got %q", rows[0].Value)
	}

	s := process.DefaultSafety()
	s.Enabled = false
	rows = FormatSafety(s)
	if len(rows) != 1 || rows[0].Value != "Disabled" {
		t.Errorf("disabled safety should yield single Disabled row, got %v", rows)
	}
}
