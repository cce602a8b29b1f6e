package design

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"biodesign/internal/process"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default design should validate: %v", err)
	}
}

func TestDesign_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "design.yaml")

	d := Default()
	d.Config.Organism = "E. coli"
	d.Parameters.Duration = 72
	d.Media.BaseMedia = "LB"
	d.Media.Antifoam = false
	d.PAT.Raman = true
	d.PAT.SamplingInterval = 6

	if err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(d, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestDesign_SaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "design.yaml")
	if err := Default().Save(path); err != nil {
		t.Fatalf("Save should create parent directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestLoad_RejectsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")

	d := Default()
	d.Parameters.Duration = -1
	// Save skips validation so a hand-edited bad file can be reproduced.
	if err := d.Save(path); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, process.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative duration, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_PartialDocumentKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	partial := "process:\n  organism: HEK293\nparameters:\n  duration: 96\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Config.Organism != "HEK293" {
		t.Errorf("expected organism HEK293, got %q", d.Config.Organism)
	}
	if d.Parameters.Duration != 96 {
		t.Errorf("expected duration 96, got %d", d.Parameters.Duration)
	}
	// Unset fields fall back to defaults.
	if d.Media.BaseMedia != "DMEM" {
		t.Errorf("expected default base media, got %q", d.Media.BaseMedia)
	}
}

func TestMarshalUnmarshal_Snapshot(t *testing.T) {
	d := Default()
	d.Config.ProcessType = process.FedBatch

	data, err := d.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d, back); diff != "" {
		t.Errorf("snapshot round trip mismatch (-orig +back):\n%s", diff)
	}
}
